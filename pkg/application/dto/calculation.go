package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

// CalculationOutcome carries a completed calculation to the presentation
// layer: the parameters it was computed from and the result with its
// guideline ranges and warnings.
type CalculationOutcome struct {
	Parameters *entities.CuttingParameters
	Material   entities.MaterialType
	Style      entities.CuttingStyle
	Result     *entities.CalculationResult
}

// HasWarnings reports whether the calculation raised any warnings.
func (o *CalculationOutcome) HasWarnings() bool {
	return o.Result.HasWarnings()
}

// MaximizeOutcome extends a calculation outcome with the maximizer's
// findings. Parameters carry the winning per-flute chipload.
type MaximizeOutcome struct {
	CalculationOutcome

	// TotalChipload is the winning chipload summed across all flutes.
	TotalChipload decimal.Decimal
	// AtUpperBound is set when the scan topped out at the chipload range
	// rather than the feedrate ceiling.
	AtUpperBound bool
	// NextRPM is the next spindle setting to try when the scan topped out at
	// the chipload bound; zero when the spindle is already at its fastest
	// setting or the feedrate ceiling was the limit.
	NextRPM int
}

// SuggestionOutcome carries a chipload recommendation in both unit framings.
type SuggestionOutcome struct {
	Material     entities.MaterialType
	ToolDiameter decimal.Decimal // mm
	Flutes       int
	PerFlute     entities.ChiploadRange
	Total        entities.ChiploadRange
}
