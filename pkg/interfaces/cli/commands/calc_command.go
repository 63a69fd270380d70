package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/millcalc/pkg/application/services"
	"github.com/vsinha/millcalc/pkg/domain/entities"
	"github.com/vsinha/millcalc/pkg/interfaces/cli/output"
)

// Config holds configuration shared by the calculator commands
type Config struct {
	Mode        string
	Flutes      int
	Diameter    string
	RPM         int
	WOC         string
	DOC         string
	Chipload    string
	Material    string
	Style       string
	MaxFeedrate string
	Increment   string
	Format      string
	Verbose     bool
	Help        bool
}

// parsedInputs carries the validated form of a Config
type parsedInputs struct {
	params   *entities.CuttingParameters
	material entities.MaterialType
	style    entities.CuttingStyle
	engine   services.EngineConfig
}

// CalcCommand computes the feedrate and guidelines for a fixed setup
type CalcCommand struct {
	config Config
}

// NewCalcCommand creates a new calc command with the given configuration
func NewCalcCommand(config Config) *CalcCommand {
	return &CalcCommand{
		config: config,
	}
}

// Execute runs the calc command
func (c *CalcCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		printHelp()
		return nil
	}

	inputs, err := parseInputs(c.config)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		printHeader("Milling Feedrate Calculator", inputs, c.config)
		fmt.Println("🔄 Calculating feedrate...")
	}

	service := services.NewCalculationServiceWithConfig(inputs.engine)
	outcome, err := service.Calculate(inputs.params, inputs.material, inputs.style)
	if err != nil {
		return fmt.Errorf("error calculating feedrate: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("✅ Calculation complete")
		fmt.Println()
	}

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}

	if err := output.GenerateCalculation(outcome, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// parseInputs validates the raw flag values and builds the domain inputs
func parseInputs(config Config) (*parsedInputs, error) {
	diameter, err := parseDecimal("tool diameter", config.Diameter)
	if err != nil {
		return nil, err
	}

	woc, err := parseDecimal("width of cut", config.WOC)
	if err != nil {
		return nil, err
	}

	doc, err := parseDecimal("depth of cut", config.DOC)
	if err != nil {
		return nil, err
	}

	chipload, err := parseDecimal("chipload", config.Chipload)
	if err != nil {
		return nil, err
	}

	params, err := entities.NewCuttingParameters(config.Flutes, diameter, config.RPM, woc, doc, chipload)
	if err != nil {
		return nil, err
	}

	material, err := entities.ParseMaterial(config.Material)
	if err != nil {
		return nil, err
	}

	style, err := entities.ParseCuttingStyle(config.Style)
	if err != nil {
		return nil, err
	}

	engine := services.EngineConfig{}
	if config.MaxFeedrate != "" {
		engine.MaxFeedrate, err = parseDecimal("max feedrate", config.MaxFeedrate)
		if err != nil {
			return nil, err
		}
	}
	if config.Increment != "" {
		engine.ChiploadIncrement, err = parseDecimal("chipload increment", config.Increment)
		if err != nil {
			return nil, err
		}
	}

	return &parsedInputs{
		params:   params,
		material: material,
		style:    style,
		engine:   engine,
	}, nil
}

// parseDecimal parses one decimal-valued flag, naming it on failure
func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return d, nil
}

// printHeader prints the verbose command header
func printHeader(title string, inputs *parsedInputs, config Config) {
	fmt.Printf("🔧 %s\n", title)
	fmt.Printf("Material: %s\n", inputs.material)
	fmt.Printf("Cutting style: %s\n", inputs.style)
	fmt.Printf("Parameters:\n")
	fmt.Printf("  Flutes: %d\n", inputs.params.Flutes)
	fmt.Printf("  Tool diameter: %s mm\n", inputs.params.ToolDiameter)
	fmt.Printf("  RPM: %d\n", inputs.params.RPM)
	fmt.Printf("  Width of cut: %s mm\n", inputs.params.WidthOfCut)
	fmt.Printf("  Depth of cut: %s mm\n", inputs.params.DepthOfCut)
	fmt.Printf("  Chipload: %s mm per flute\n", inputs.params.Chipload)
	fmt.Printf("Output format: %s\n", config.Format)
	fmt.Println()
}

// printHelp displays the help message
func printHelp() {
	fmt.Printf(`millcalc - CNC Milling Feeds & Speeds Calculator

USAGE:
    millcalc -mode calc [options]          # Compute feedrate and guidelines
    millcalc -mode maximize [options]      # Find the fastest feasible feedrate
    millcalc -mode suggest [options]       # Suggest a chipload range for a tool

MODES:
    calc        Compute the required feedrate for the given chipload, plus
                WOC, DOC and plunge rate guidelines for the material and
                cutting style.
    maximize    Scan the suggested chipload range for the tool and material
                and report the highest feedrate that stays under the machine
                ceiling.
    suggest     Look up the suggested chipload range for a tool diameter and
                material, interpolating between table entries.

OPTIONS:
    -flutes <n>         Number of cutting flutes on the tool (default: 1)
    -diameter <mm>      Tool diameter in mm (default: 6.35)
    -rpm <n>            Spindle speed in RPM (default: 18000)
    -woc <mm>           Width of cut (stepover) in mm (default: 6.35)
    -doc <mm>           Depth of cut in mm (default: 0.254)
    -chipload <mm>      Chipload in mm per flute (default: 0.0254)
    -material <name>    Workpiece material (default: "Soft plastics")
    -style <name>       Cutting style (default: "Wide and Shallow")
    -max-feedrate <mm>  Machine feedrate ceiling in mm/min (default: 6000)
    -increment <mm>     Chipload scan step for maximize mode (default: 0.0001)
    -format <fmt>       Output format: text, json (default: text)
    -verbose            Enable verbose output
    -help               Show this help message

MATERIALS:
    "Soft plastics"
    "Soft wood & hard plastics"
    "Hard wood & aluminium"

CUTTING STYLES:
    "Wide and Shallow"
    "Narrow and Deep"

EXAMPLES:
    # Feedrate for the stock single-flute 6.35 mm setup
    millcalc -mode calc

    # Two-flute 3.175 mm tool in hard wood at 23000 RPM
    millcalc -mode calc -flutes 2 -diameter 3.175 -rpm 23000 -woc 0.79375 \
        -doc 3.175 -chipload 0.013 -material "Hard wood & aluminium" \
        -style "Narrow and Deep"

    # Fastest feasible feedrate for the stock setup, as JSON
    millcalc -mode maximize -format json

    # Suggested chipload range for a 4 mm tool in soft wood
    millcalc -mode suggest -diameter 4 -material "Soft wood & hard plastics"
`)
}
