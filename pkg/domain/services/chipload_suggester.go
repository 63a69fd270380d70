package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

// ChiploadSuggester recommends per-flute chipload ranges for a tool diameter
// by reading a material's reference table.
type ChiploadSuggester struct {
	table *entities.ChiploadTable
}

// NewChiploadSuggester creates a suggester backed by the given table.
func NewChiploadSuggester(table *entities.ChiploadTable) *ChiploadSuggester {
	return &ChiploadSuggester{table: table}
}

// Suggest returns the recommended per-flute chipload range for a tool of the
// given diameter in the given material. Tabulated diameters return their
// entry verbatim. Diameters below the table clamp to the smallest reference;
// diameters between references interpolate linearly; diameters above the
// table extrapolate along the slope of the last two references, with the
// lower bound floored at the material's smallest tabulated minimum.
func (s *ChiploadSuggester) Suggest(toolDiameter decimal.Decimal, material entities.MaterialType) (entities.ChiploadRange, error) {
	if !toolDiameter.IsPositive() {
		return entities.ChiploadRange{}, &entities.InvalidParameterError{
			Field:  "tool diameter",
			Reason: fmt.Sprintf("must be positive, got %s", toolDiameter),
		}
	}

	refs, err := s.table.Entries(material)
	if err != nil {
		return entities.ChiploadRange{}, err
	}

	for _, ref := range refs {
		if toolDiameter.Equal(ref.Diameter) {
			return entities.NewPerFluteChiploadRange(ref.MinChipload, ref.MaxChipload), nil
		}
	}

	first := refs[0]
	if toolDiameter.LessThan(first.Diameter) {
		return entities.NewPerFluteChiploadRange(first.MinChipload, first.MaxChipload), nil
	}

	last := refs[len(refs)-1]
	if toolDiameter.GreaterThan(last.Diameter) {
		return s.extrapolate(refs, toolDiameter), nil
	}

	// Bracket the diameter between two references and interpolate each bound.
	lo, hi := first, last
	for i := 1; i < len(refs); i++ {
		if refs[i].Diameter.GreaterThan(toolDiameter) {
			lo, hi = refs[i-1], refs[i]
			break
		}
	}
	lower := interpolate(toolDiameter, lo.Diameter, lo.MinChipload, hi.Diameter, hi.MinChipload)
	upper := interpolate(toolDiameter, lo.Diameter, lo.MaxChipload, hi.Diameter, hi.MaxChipload)
	return entities.NewPerFluteChiploadRange(lower, upper), nil
}

// extrapolate extends the table beyond its largest reference diameter using
// the slope of the last two entries. A single-entry material has no slope to
// take, so it clamps to its one reference.
func (s *ChiploadSuggester) extrapolate(refs []entities.ChiploadEntry, toolDiameter decimal.Decimal) entities.ChiploadRange {
	last := refs[len(refs)-1]
	if len(refs) == 1 {
		return entities.NewPerFluteChiploadRange(last.MinChipload, last.MaxChipload)
	}
	prev := refs[len(refs)-2]

	span := last.Diameter.Sub(prev.Diameter)
	offset := toolDiameter.Sub(last.Diameter)

	lowerSlope := last.MinChipload.Sub(prev.MinChipload).Div(span)
	upperSlope := last.MaxChipload.Sub(prev.MaxChipload).Div(span)

	lower := last.MinChipload.Add(lowerSlope.Mul(offset))
	upper := last.MaxChipload.Add(upperSlope.Mul(offset))

	// The lower bound never extrapolates below the material's smallest
	// tabulated minimum; the upper bound is left to grow.
	floor := refs[0].MinChipload
	for _, ref := range refs[1:] {
		floor = decimal.Min(floor, ref.MinChipload)
	}
	lower = decimal.Max(lower, floor)

	return entities.NewPerFluteChiploadRange(lower, upper)
}

// interpolate evaluates the line through (x1, y1) and (x2, y2) at x.
func interpolate(x, x1, y1, x2, y2 decimal.Decimal) decimal.Decimal {
	return y1.Add(x.Sub(x1).Mul(y2.Sub(y1)).Div(x2.Sub(x1)))
}
