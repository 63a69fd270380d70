package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChiploadEntry is one reference point in the chipload table: the recommended
// per-flute chipload range for a given tool diameter.
type ChiploadEntry struct {
	Diameter    decimal.Decimal // mm
	MinChipload decimal.Decimal // mm per flute
	MaxChipload decimal.Decimal // mm per flute
}

// ChiploadTable holds per-material chipload reference data, ordered by
// diameter. Tables are immutable once constructed.
type ChiploadTable struct {
	entries map[MaterialType][]ChiploadEntry
}

// NewChiploadTable validates and builds a chipload table. Every material needs
// at least one entry; entries must be sorted by strictly increasing diameter
// with positive diameters and 0 < min <= max chiploads.
func NewChiploadTable(entries map[MaterialType][]ChiploadEntry) (*ChiploadTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("chipload table must contain at least one material")
	}

	copied := make(map[MaterialType][]ChiploadEntry, len(entries))
	for material, refs := range entries {
		if len(refs) == 0 {
			return nil, fmt.Errorf("material %s has no chipload entries", material)
		}
		for i, ref := range refs {
			if !ref.Diameter.IsPositive() {
				return nil, fmt.Errorf("material %s entry %d: diameter must be positive, got %s",
					material, i, ref.Diameter)
			}
			if !ref.MinChipload.IsPositive() {
				return nil, fmt.Errorf("material %s entry %d: min chipload must be positive, got %s",
					material, i, ref.MinChipload)
			}
			if ref.MaxChipload.LessThan(ref.MinChipload) {
				return nil, fmt.Errorf("material %s entry %d: max chipload %s is below min chipload %s",
					material, i, ref.MaxChipload, ref.MinChipload)
			}
			if i > 0 && ref.Diameter.LessThanOrEqual(refs[i-1].Diameter) {
				return nil, fmt.Errorf("material %s entries must be sorted by strictly increasing diameter",
					material)
			}
		}
		materialRefs := make([]ChiploadEntry, len(refs))
		copy(materialRefs, refs)
		copied[material] = materialRefs
	}

	return &ChiploadTable{entries: copied}, nil
}

// Entries returns the reference entries for a material, smallest diameter
// first. The returned slice is a copy.
func (t *ChiploadTable) Entries(material MaterialType) ([]ChiploadEntry, error) {
	refs, ok := t.entries[material]
	if !ok {
		return nil, &UnknownMaterialError{Material: material.String()}
	}
	out := make([]ChiploadEntry, len(refs))
	copy(out, refs)
	return out, nil
}

// Materials lists the materials present in the table in display order.
func (t *ChiploadTable) Materials() []MaterialType {
	out := make([]MaterialType, 0, len(t.entries))
	for _, m := range AllMaterials() {
		if _, ok := t.entries[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// DefaultChiploadTable returns the built-in reference table for hobby-grade
// machines. Diameters are in mm, chiploads in mm per flute.
func DefaultChiploadTable() *ChiploadTable {
	return defaultTable
}

var defaultTable = mustDefaultTable()

func mustDefaultTable() *ChiploadTable {
	table, err := NewChiploadTable(map[MaterialType][]ChiploadEntry{
		SoftPlastics: {
			{Diameter: dec("1.5"), MinChipload: dec("0.05"), MaxChipload: dec("0.075")},
			{Diameter: dec("3.175"), MinChipload: dec("0.05"), MaxChipload: dec("0.13")},
			{Diameter: dec("6"), MinChipload: dec("0.05"), MaxChipload: dec("0.254")},
		},
		SoftWoodHardPlastics: {
			{Diameter: dec("1.5"), MinChipload: dec("0.025"), MaxChipload: dec("0.04")},
			{Diameter: dec("3.175"), MinChipload: dec("0.025"), MaxChipload: dec("0.063")},
			{Diameter: dec("6"), MinChipload: dec("0.025"), MaxChipload: dec("0.127")},
		},
		HardWoodAluminium: {
			{Diameter: dec("1.5"), MinChipload: dec("0.013"), MaxChipload: dec("0.013")},
			{Diameter: dec("3.175"), MinChipload: dec("0.013"), MaxChipload: dec("0.025")},
			{Diameter: dec("6"), MinChipload: dec("0.025"), MaxChipload: dec("0.05")},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in chipload table is invalid: %v", err))
	}
	return table
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ChiploadRange is a recommended chipload interval, tagged with whether the
// bounds are per flute or totals across all flutes.
type ChiploadRange struct {
	Range
	PerFlute bool
}

// NewPerFluteChiploadRange creates a range whose bounds are per-flute values.
func NewPerFluteChiploadRange(lower, upper decimal.Decimal) ChiploadRange {
	return ChiploadRange{Range: NewRange(lower, upper), PerFlute: true}
}

// NewTotalChiploadRange creates a range whose bounds are totals across all
// flutes.
func NewTotalChiploadRange(lower, upper decimal.Decimal) ChiploadRange {
	return ChiploadRange{Range: NewRange(lower, upper), PerFlute: false}
}

// ToTotal converts the range to totals across the given flute count. An
// already-total range is returned unchanged.
func (r ChiploadRange) ToTotal(flutes int) (ChiploadRange, error) {
	if flutes <= 0 {
		return ChiploadRange{}, &InvalidParameterError{
			Field:  "number of flutes",
			Reason: fmt.Sprintf("must be positive, got %d", flutes),
		}
	}
	if !r.PerFlute {
		return r, nil
	}
	n := decimal.NewFromInt(int64(flutes))
	return NewTotalChiploadRange(r.Lower.Mul(n), r.Upper.Mul(n)), nil
}

// ToPerFlute converts the range to per-flute values for the given flute
// count. An already-per-flute range is returned unchanged.
func (r ChiploadRange) ToPerFlute(flutes int) (ChiploadRange, error) {
	if flutes <= 0 {
		return ChiploadRange{}, &InvalidParameterError{
			Field:  "number of flutes",
			Reason: fmt.Sprintf("must be positive, got %d", flutes),
		}
	}
	if r.PerFlute {
		return r, nil
	}
	n := decimal.NewFromInt(int64(flutes))
	return NewPerFluteChiploadRange(r.Lower.Div(n), r.Upper.Div(n)), nil
}
