package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/millcalc/pkg/application/services"
	"github.com/vsinha/millcalc/pkg/interfaces/cli/output"
)

// MaximizeCommand scans the suggested chipload range for the fastest
// feedrate under the machine ceiling
type MaximizeCommand struct {
	config Config
}

// NewMaximizeCommand creates a new maximize command with the given configuration
func NewMaximizeCommand(config Config) *MaximizeCommand {
	return &MaximizeCommand{
		config: config,
	}
}

// Execute runs the maximize command
func (c *MaximizeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		printHelp()
		return nil
	}

	inputs, err := parseInputs(c.config)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	service := services.NewCalculationServiceWithConfig(inputs.engine)

	if c.config.Verbose {
		printHeader("Milling Feedrate Maximizer", inputs, c.config)
		fmt.Printf("Feedrate ceiling: %s mm/min\n", service.MaxFeedrate())
		fmt.Println("🔄 Scanning chipload range...")
	}

	startTime := time.Now()
	outcome, err := service.MaximizeFeedrate(inputs.params, inputs.material, inputs.style)
	scanTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error maximizing feedrate: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Scan completed in %v\n\n", scanTime)
	}

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}

	if err := output.GenerateMaximization(outcome, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}
