package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Range is an inclusive recommendation interval. The unit (mm or mm/min)
// depends on where it came from.
type Range struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
}

// NewRange creates a range with the given bounds.
func NewRange(lower, upper decimal.Decimal) Range {
	return Range{Lower: lower, Upper: upper}
}

// Inverted reports whether the lower bound exceeds the upper bound.
func (r Range) Inverted() bool {
	return r.Lower.GreaterThan(r.Upper)
}

// Contains reports whether value lies within the range, bounds included.
func (r Range) Contains(value decimal.Decimal) bool {
	return value.GreaterThanOrEqual(r.Lower) && value.LessThanOrEqual(r.Upper)
}

// Format renders the range as "lower to upper" with the given number of
// decimal places, collapsing to a single value when the bounds coincide.
func (r Range) Format(places int32) string {
	if r.Lower.Equal(r.Upper) {
		return r.Lower.StringFixed(places)
	}
	return fmt.Sprintf("%s to %s", r.Lower.StringFixed(places), r.Upper.StringFixed(places))
}

// feedrateSanityLimit is the hard warning threshold; feedrates beyond it are
// almost certainly an input mistake regardless of the machine's ceiling.
var feedrateSanityLimit = decimal.NewFromInt(10000)

// CalculationResult bundles a computed feedrate with its companion guideline
// ranges. Warnings are derived once at construction and never mutated.
type CalculationResult struct {
	Feedrate        decimal.Decimal // mm/min
	WOCRange        Range           // mm
	DOCRange        Range           // mm
	PlungeRateRange Range           // mm/min
	Warnings        []string
}

// NewCalculationResult assembles a result and derives its warnings: the
// feedrate is checked against the machine ceiling and the 10,000 mm/min
// sanity limit, and each guideline range is checked for inverted bounds.
func NewCalculationResult(feedrate decimal.Decimal, wocRange, docRange, plungeRange Range, feedrateCeiling decimal.Decimal) *CalculationResult {
	result := &CalculationResult{
		Feedrate:        feedrate,
		WOCRange:        wocRange,
		DOCRange:        docRange,
		PlungeRateRange: plungeRange,
		Warnings:        make([]string, 0),
	}

	if feedrate.GreaterThan(feedrateCeiling) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Calculated feedrate exceeds %s mm/min", feedrateCeiling.StringFixed(0)))
	}
	if feedrate.GreaterThan(feedrateSanityLimit) {
		result.Warnings = append(result.Warnings, "Calculated feedrate exceeds 10,000 mm/min")
	}
	if wocRange.Inverted() {
		result.Warnings = append(result.Warnings, "Invalid WOC range")
	}
	if docRange.Inverted() {
		result.Warnings = append(result.Warnings, "Invalid DOC range")
	}
	if plungeRange.Inverted() {
		result.Warnings = append(result.Warnings, "Invalid plunge rate range")
	}

	return result
}

// HasWarnings reports whether any warnings were raised at construction.
func (r *CalculationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// MaximizeResult is the outcome of a feedrate maximization scan.
type MaximizeResult struct {
	Feedrate      decimal.Decimal // highest feedrate found at or below the ceiling, mm/min
	TotalChipload decimal.Decimal // total chipload that produced it, mm
	AtUpperBound  bool            // winning chipload sits within one increment of the scanned range's top
}
