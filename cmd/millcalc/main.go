package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/millcalc/pkg/domain/entities"
	"github.com/vsinha/millcalc/pkg/interfaces/cli/commands"
)

func main() {
	defaults := entities.DefaultValues()

	// Command line flags
	var (
		mode     = flag.String("mode", "calc", "Operation mode: calc, maximize, suggest")
		flutes   = flag.Int("flutes", defaults.Flutes, "Number of cutting flutes on the tool")
		diameter = flag.String("diameter", defaults.ToolDiameter.String(), "Tool diameter in mm")
		rpm      = flag.Int("rpm", defaults.RPM, "Spindle speed in RPM")
		woc      = flag.String("woc", defaults.WidthOfCut.String(), "Width of cut (stepover) in mm")
		doc      = flag.String("doc", defaults.DepthOfCut.String(), "Depth of cut in mm")
		chipload = flag.String(
			"chipload",
			defaults.Chipload.String(),
			"Chipload in mm per flute",
		)
		material = flag.String(
			"material",
			defaults.Material.String(),
			"Workpiece material: \"Soft plastics\", \"Soft wood & hard plastics\", \"Hard wood & aluminium\"",
		)
		style = flag.String(
			"style",
			defaults.Style.String(),
			"Cutting style: \"Wide and Shallow\", \"Narrow and Deep\"",
		)
		maxFeedrate = flag.String(
			"max-feedrate",
			defaults.MaxFeedrate.String(),
			"Machine feedrate ceiling in mm/min",
		)
		increment = flag.String(
			"increment",
			defaults.ChiploadIncrement.String(),
			"Chipload scan step in mm for maximize mode",
		)
		format  = flag.String("format", "text", "Output format: text, json")
		verbose = flag.Bool("verbose", false, "Enable verbose output")
		help    = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		Mode:        *mode,
		Flutes:      *flutes,
		Diameter:    *diameter,
		RPM:         *rpm,
		WOC:         *woc,
		DOC:         *doc,
		Chipload:    *chipload,
		Material:    *material,
		Style:       *style,
		MaxFeedrate: *maxFeedrate,
		Increment:   *increment,
		Format:      *format,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute the command for the selected mode
	var cmd interface {
		Execute(ctx context.Context) error
	}

	switch config.Mode {
	case "calc":
		cmd = commands.NewCalcCommand(config)
	case "maximize":
		cmd = commands.NewMaximizeCommand(config)
	case "suggest":
		cmd = commands.NewSuggestCommand(config)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (expected calc, maximize, or suggest)\n", config.Mode)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
