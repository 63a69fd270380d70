package entities

import "github.com/shopspring/decimal"

// Defaults is the stock setup the calculator starts from: a single-flute
// 1/4" (6.35 mm) endmill cutting soft plastics at 18000 RPM.
type Defaults struct {
	Flutes       int
	ToolDiameter decimal.Decimal // mm
	RPM          int
	WidthOfCut   decimal.Decimal // mm
	DepthOfCut   decimal.Decimal // mm
	Chipload     decimal.Decimal // mm per flute
	Material     MaterialType
	Style        CuttingStyle

	// MaxFeedrate is the machine's feedrate ceiling in mm/min; it bounds the
	// maximizer and triggers the soft feedrate warning.
	MaxFeedrate decimal.Decimal
	// ChiploadIncrement is the maximizer's scan step in mm.
	ChiploadIncrement decimal.Decimal
}

// DefaultValues returns the stock configuration.
func DefaultValues() Defaults {
	return Defaults{
		Flutes:            1,
		ToolDiameter:      dec("6.35"),
		RPM:               18000,
		WidthOfCut:        dec("6.35"),
		DepthOfCut:        dec("0.254"),
		Chipload:          dec("0.0254"),
		Material:          SoftPlastics,
		Style:             WideShallow,
		MaxFeedrate:       dec("6000"),
		ChiploadIncrement: dec("0.0001"),
	}
}
