package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

// FeedrateCalculator derives linear feedrates from spindle speed and
// chipload, correcting for chip thinning on shallow radial engagements.
type FeedrateCalculator struct{}

// NewFeedrateCalculator creates a new feedrate calculator
func NewFeedrateCalculator() *FeedrateCalculator {
	return &FeedrateCalculator{}
}

var two = decimal.NewFromInt(2)

// Feedrate computes the feedrate in mm/min that keeps each flute cutting at
// the given per-flute chipload. Cuts engaging more than half the tool
// diameter take the base formula rpm * chipload * flutes; shallower cuts thin
// the chip, so the base is scaled up by the trochoidal correction
// 1/sqrt(1 - (1 - 2*woc/d)^2) to restore the effective chip thickness.
func (c *FeedrateCalculator) Feedrate(flutes, rpm int, chipload, widthOfCut, toolDiameter decimal.Decimal) (decimal.Decimal, error) {
	if flutes <= 0 {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "number of flutes",
			Reason: fmt.Sprintf("must be positive, got %d", flutes),
		}
	}
	if rpm <= 0 {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "RPM",
			Reason: fmt.Sprintf("must be positive, got %d", rpm),
		}
	}
	if !chipload.IsPositive() {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "chipload",
			Reason: fmt.Sprintf("must be positive, got %s", chipload),
		}
	}
	if !widthOfCut.IsPositive() {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "width of cut",
			Reason: fmt.Sprintf("must be positive, got %s", widthOfCut),
		}
	}
	if !toolDiameter.IsPositive() {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "tool diameter",
			Reason: fmt.Sprintf("must be positive, got %s", toolDiameter),
		}
	}
	if widthOfCut.GreaterThan(toolDiameter) {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "width of cut",
			Reason: fmt.Sprintf("cannot exceed tool diameter, got %s > %s", widthOfCut, toolDiameter),
		}
	}

	base := decimal.NewFromInt(int64(rpm)).Mul(chipload).Mul(decimal.NewFromInt(int64(flutes)))
	if widthOfCut.GreaterThan(toolDiameter.Div(two)) {
		return base, nil
	}

	// The square root is the one irrational step, so it runs in float64 and
	// converts back through NewFromFloat.
	ratio, _ := widthOfCut.Div(toolDiameter).Float64()
	offset := 1 - 2*ratio
	correction := math.Sqrt(1 - offset*offset)
	if correction == 0 || math.IsNaN(correction) || math.IsInf(correction, 0) {
		return decimal.Zero, &entities.InvalidParameterError{
			Field:  "width of cut",
			Reason: fmt.Sprintf("is too small relative to the tool diameter for a finite feedrate, got %s", widthOfCut),
		}
	}

	return base.Div(decimal.NewFromFloat(correction)), nil
}
