package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/millcalc/pkg/application/services"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

func main() {
	service := services.NewCalculationService()

	// A 2-flute 6 mm endmill cutting hard wood, narrow and deep.
	material := entities.HardWoodAluminium
	style := entities.NarrowDeep
	diameter := decimal.RequireFromString("6")
	flutes := 2

	fmt.Println("🔧 Planning a cut in hard wood with a 2-flute 6 mm endmill...")
	fmt.Println()

	// Ask the table what chipload this tool wants.
	suggestion, err := service.SuggestChipload(diameter, flutes, material)
	if err != nil {
		fmt.Printf("❌ Suggestion failed: %v\n", err)
		return
	}

	fmt.Println("📋 Suggested chipload:")
	fmt.Printf("  Per flute: %s mm\n", suggestion.PerFlute.Format(4))
	fmt.Printf("  Total: %s mm\n", suggestion.Total.Format(4))
	fmt.Println()

	// Start at the conservative end of the suggestion with a
	// quarter-diameter stepover.
	params, err := entities.NewCuttingParameters(
		flutes,
		diameter,
		18000,
		decimal.RequireFromString("1.5"),
		diameter,
		suggestion.PerFlute.Lower,
	)
	if err != nil {
		fmt.Printf("❌ Invalid parameters: %v\n", err)
		return
	}

	outcome, err := service.Calculate(params, material, style)
	if err != nil {
		fmt.Printf("❌ Calculation failed: %v\n", err)
		return
	}

	fmt.Println("📊 Conservative starting point:")
	fmt.Printf("  Feedrate: %s mm/min\n", outcome.Result.Feedrate.StringFixed(0))
	fmt.Printf("  WOC guideline: %s mm\n", outcome.Result.WOCRange.Format(2))
	fmt.Printf("  DOC guideline: %s mm\n", outcome.Result.DOCRange.Format(2))
	fmt.Printf("  Plunge rate guideline: %s mm/min\n", outcome.Result.PlungeRateRange.Format(0))
	fmt.Println()

	// Now find out how fast this setup can actually go.
	best, err := service.MaximizeFeedrate(params, material, style)
	if err != nil {
		fmt.Printf("❌ Maximization failed: %v\n", err)
		return
	}

	fmt.Println("🚀 After maximizing within the suggested chipload range:")
	fmt.Printf("  Feedrate: %s mm/min\n", best.Result.Feedrate.StringFixed(0))
	fmt.Printf("  Chipload: %s mm per flute (%s mm total)\n",
		best.Parameters.Chipload.StringFixed(4),
		best.TotalChipload.StringFixed(4))

	if best.AtUpperBound {
		if best.NextRPM > 0 {
			fmt.Printf("  💡 The chipload range is the limit here. Spinning up to %d RPM would allow more feed.\n",
				best.NextRPM)
		} else {
			fmt.Println("  💡 The chipload range is the limit and the spindle is already at its top speed.")
		}
	}

	for _, warning := range best.Result.Warnings {
		fmt.Printf("  ⚠️  %s\n", warning)
	}

	fmt.Println()
	fmt.Println("✅ Cut planning complete!")
}
