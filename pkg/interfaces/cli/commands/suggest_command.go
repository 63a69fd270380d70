package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/millcalc/pkg/application/services"
	"github.com/vsinha/millcalc/pkg/domain/entities"
	"github.com/vsinha/millcalc/pkg/interfaces/cli/output"
)

// SuggestCommand looks up the recommended chipload range for a tool
type SuggestCommand struct {
	config Config
}

// NewSuggestCommand creates a new suggest command with the given configuration
func NewSuggestCommand(config Config) *SuggestCommand {
	return &SuggestCommand{
		config: config,
	}
}

// Execute runs the suggest command
func (c *SuggestCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		printHelp()
		return nil
	}

	diameter, err := parseDecimal("tool diameter", c.config.Diameter)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	material, err := entities.ParseMaterial(c.config.Material)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("🔧 Milling Chipload Suggester\n")
		fmt.Printf("Material: %s\n", material)
		fmt.Printf("Tool diameter: %s mm\n", diameter)
		fmt.Printf("Flutes: %d\n", c.config.Flutes)
		fmt.Printf("Output format: %s\n", c.config.Format)
		fmt.Println()
	}

	service := services.NewCalculationService()
	outcome, err := service.SuggestChipload(diameter, c.config.Flutes, material)
	if err != nil {
		return fmt.Errorf("error suggesting chipload: %w", err)
	}

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}

	if err := output.GenerateSuggestion(outcome, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}
