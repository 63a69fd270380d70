package services

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

// FeedrateMaximizer scans a chipload range for the highest feedrate that
// stays at or below a machine's feedrate ceiling.
type FeedrateMaximizer struct {
	calculator *FeedrateCalculator
	increment  decimal.Decimal
}

// NewFeedrateMaximizer creates a maximizer stepping total chipload by
// increment. A non-positive increment falls back to the stock step.
func NewFeedrateMaximizer(calculator *FeedrateCalculator, increment decimal.Decimal) *FeedrateMaximizer {
	if !increment.IsPositive() {
		increment = entities.DefaultValues().ChiploadIncrement
	}
	return &FeedrateMaximizer{calculator: calculator, increment: increment}
}

// Increment returns the maximizer's scan step in mm of total chipload.
func (m *FeedrateMaximizer) Increment() decimal.Decimal {
	return m.increment
}

// Maximize walks total chiploads from the bottom of the range to the top and
// returns the best feedrate found at or below the ceiling. The scan stops
// early once the ceiling is crossed, since feedrate grows with chipload.
// ErrNoFeasibleFeedrate is returned when even the bottom of the range
// overshoots the ceiling, or the range is empty.
func (m *FeedrateMaximizer) Maximize(params *entities.CuttingParameters, chiploads entities.ChiploadRange, ceiling decimal.Decimal) (*entities.MaximizeResult, error) {
	totals, err := chiploads.ToTotal(params.Flutes)
	if err != nil {
		return nil, err
	}

	flutes := decimal.NewFromInt(int64(params.Flutes))
	best := decimal.Zero
	bestChipload := decimal.Zero

	for current := totals.Lower; current.LessThanOrEqual(totals.Upper); current = current.Add(m.increment) {
		feedrate, err := m.calculator.Feedrate(params.Flutes, params.RPM, current.Div(flutes), params.WidthOfCut, params.ToolDiameter)
		if err != nil {
			return nil, err
		}
		if feedrate.GreaterThan(ceiling) {
			break
		}
		if feedrate.GreaterThan(best) {
			best = feedrate
			bestChipload = current
		}
	}

	if best.IsZero() {
		return nil, entities.ErrNoFeasibleFeedrate
	}

	return &entities.MaximizeResult{
		Feedrate:      best,
		TotalChipload: bestChipload,
		AtUpperBound:  totals.Upper.Sub(bestChipload).Abs().LessThan(m.increment),
	}, nil
}
