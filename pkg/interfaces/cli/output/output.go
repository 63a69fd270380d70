package output

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/millcalc/pkg/application/dto"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// GenerateCalculation renders a feedrate calculation in the specified format
func GenerateCalculation(outcome *dto.CalculationOutcome, config Config) error {
	switch config.Format {
	case "text":
		return generateCalculationText(outcome)
	case "json":
		return generateCalculationJSON(outcome)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateMaximization renders a feedrate maximization in the specified format
func GenerateMaximization(outcome *dto.MaximizeOutcome, config Config) error {
	switch config.Format {
	case "text":
		return generateMaximizationText(outcome)
	case "json":
		return generateMaximizationJSON(outcome)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GenerateSuggestion renders a chipload suggestion in the specified format
func GenerateSuggestion(outcome *dto.SuggestionOutcome, config Config) error {
	switch config.Format {
	case "text":
		return generateSuggestionText(outcome)
	case "json":
		return generateSuggestionJSON(outcome)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateCalculationText creates human-readable text output
func generateCalculationText(outcome *dto.CalculationOutcome) error {
	fmt.Printf("📊 Feedrate Results\n")
	fmt.Printf("===================\n\n")

	fmt.Printf("Material: %s\n", outcome.Material)
	fmt.Printf("Cutting style: %s\n\n", outcome.Style)

	printResultBlock(outcome.Result)
	printWarnings(outcome.Result.Warnings)

	return nil
}

// generateMaximizationText creates human-readable text output
func generateMaximizationText(outcome *dto.MaximizeOutcome) error {
	fmt.Printf("📊 Feedrate Maximization Results\n")
	fmt.Printf("================================\n\n")

	fmt.Printf("Material: %s\n", outcome.Material)
	fmt.Printf("Cutting style: %s\n\n", outcome.Style)

	fmt.Printf("Maximum feedrate of %s mm/min achieved.\n", outcome.Result.Feedrate.StringFixed(0))
	if outcome.AtUpperBound {
		if outcome.NextRPM > 0 {
			fmt.Printf("Consider increasing RPM to %d.\n", outcome.NextRPM)
		} else {
			fmt.Printf("Already at maximum RPM.\n")
		}
	}
	fmt.Println()

	fmt.Printf("Optimal chipload (mm per flute): %s\n", outcome.Parameters.Chipload.StringFixed(4))
	fmt.Printf("Optimal chipload (mm total): %s\n\n", outcome.TotalChipload.StringFixed(4))

	printResultBlock(outcome.Result)
	printWarnings(outcome.Result.Warnings)

	return nil
}

// generateSuggestionText creates human-readable text output
func generateSuggestionText(outcome *dto.SuggestionOutcome) error {
	fmt.Printf("📊 Chipload Suggestion\n")
	fmt.Printf("======================\n\n")

	fmt.Printf("Material: %s\n", outcome.Material)
	fmt.Printf("Tool diameter (mm): %s\n", outcome.ToolDiameter.StringFixed(2))
	fmt.Printf("Flutes: %d\n\n", outcome.Flutes)

	fmt.Printf("Suggested chipload range:\n")
	fmt.Printf("%s mm per flute\n", outcome.PerFlute.Format(4))
	fmt.Printf("%s mm total\n", outcome.Total.Format(4))

	return nil
}

// printResultBlock prints the feedrate and guideline lines shared by the
// calc and maximize renderings
func printResultBlock(result *entities.CalculationResult) {
	fmt.Printf("Required feedrate (mm/min): %s\n", result.Feedrate.StringFixed(0))
	fmt.Printf("WOC guideline (mm): %s\n", result.WOCRange.Format(2))
	fmt.Printf("DOC guideline (mm): %s\n", result.DOCRange.Format(2))
	fmt.Printf("Plunge rate guideline (mm/min): %s\n", result.PlungeRateRange.Format(0))
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println()
	for _, warning := range warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
}

// jsonRange is the wire form of a guideline range, decimals as strings
type jsonRange struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
}

func newJSONRange(r entities.Range) jsonRange {
	return jsonRange{Lower: r.Lower, Upper: r.Upper}
}

type jsonParameters struct {
	Flutes       int             `json:"flutes"`
	ToolDiameter decimal.Decimal `json:"tool_diameter_mm"`
	RPM          int             `json:"rpm"`
	WidthOfCut   decimal.Decimal `json:"width_of_cut_mm"`
	DepthOfCut   decimal.Decimal `json:"depth_of_cut_mm"`
	Chipload     decimal.Decimal `json:"chipload_mm_per_flute"`
}

type jsonResults struct {
	Feedrate        decimal.Decimal `json:"feedrate_mm_per_min"`
	WOCRange        jsonRange       `json:"woc_range_mm"`
	DOCRange        jsonRange       `json:"doc_range_mm"`
	PlungeRateRange jsonRange       `json:"plunge_rate_range_mm_per_min"`
	Warnings        []string        `json:"warnings,omitempty"`
}

func newJSONParameters(params *entities.CuttingParameters) jsonParameters {
	return jsonParameters{
		Flutes:       params.Flutes,
		ToolDiameter: params.ToolDiameter,
		RPM:          params.RPM,
		WidthOfCut:   params.WidthOfCut,
		DepthOfCut:   params.DepthOfCut,
		Chipload:     params.Chipload,
	}
}

func newJSONResults(result *entities.CalculationResult) jsonResults {
	return jsonResults{
		Feedrate:        result.Feedrate,
		WOCRange:        newJSONRange(result.WOCRange),
		DOCRange:        newJSONRange(result.DOCRange),
		PlungeRateRange: newJSONRange(result.PlungeRateRange),
		Warnings:        result.Warnings,
	}
}

// generateCalculationJSON creates JSON output
func generateCalculationJSON(outcome *dto.CalculationOutcome) error {
	payload := struct {
		Material     string         `json:"material"`
		CuttingStyle string         `json:"cutting_style"`
		Parameters   jsonParameters `json:"parameters"`
		Results      jsonResults    `json:"results"`
	}{
		Material:     outcome.Material.String(),
		CuttingStyle: outcome.Style.String(),
		Parameters:   newJSONParameters(outcome.Parameters),
		Results:      newJSONResults(outcome.Result),
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

// generateMaximizationJSON creates JSON output
func generateMaximizationJSON(outcome *dto.MaximizeOutcome) error {
	payload := struct {
		Material      string          `json:"material"`
		CuttingStyle  string          `json:"cutting_style"`
		Parameters    jsonParameters  `json:"parameters"`
		Results       jsonResults     `json:"results"`
		TotalChipload decimal.Decimal `json:"total_chipload_mm"`
		AtUpperBound  bool            `json:"at_chipload_upper_bound"`
		NextRPM       int             `json:"next_rpm,omitempty"`
	}{
		Material:      outcome.Material.String(),
		CuttingStyle:  outcome.Style.String(),
		Parameters:    newJSONParameters(outcome.Parameters),
		Results:       newJSONResults(outcome.Result),
		TotalChipload: outcome.TotalChipload,
		AtUpperBound:  outcome.AtUpperBound,
		NextRPM:       outcome.NextRPM,
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

// generateSuggestionJSON creates JSON output
func generateSuggestionJSON(outcome *dto.SuggestionOutcome) error {
	payload := struct {
		Material     string          `json:"material"`
		ToolDiameter decimal.Decimal `json:"tool_diameter_mm"`
		Flutes       int             `json:"flutes"`
		PerFlute     jsonRange       `json:"chipload_per_flute_mm"`
		Total        jsonRange       `json:"chipload_total_mm"`
	}{
		Material:     outcome.Material.String(),
		ToolDiameter: outcome.ToolDiameter,
		Flutes:       outcome.Flutes,
		PerFlute:     newJSONRange(outcome.PerFlute.Range),
		Total:        newJSONRange(outcome.Total.Range),
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}
