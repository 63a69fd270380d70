package services

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/millcalc/pkg/domain/entities"
)

// GuidelineCalculator derives width-of-cut, depth-of-cut and plunge rate
// recommendations from the tool diameter, cutting style and material.
type GuidelineCalculator struct{}

// NewGuidelineCalculator creates a new guideline calculator
func NewGuidelineCalculator() *GuidelineCalculator {
	return &GuidelineCalculator{}
}

// Guideline multipliers: WOC and DOC scale the tool diameter, plunge rates
// scale the calculated feedrate.
var (
	wideShallowWOC = entities.NewRange(dec("0.4"), dec("1"))
	wideShallowDOC = entities.NewRange(dec("0.05"), dec("0.1"))
	narrowDeepWOC  = entities.NewRange(dec("0.1"), dec("0.25"))
	narrowDeepDOC  = entities.NewRange(dec("1"), dec("3"))

	plungeHardWood     = entities.NewRange(dec("0.1"), dec("0.3"))
	plungeSoftWood     = entities.NewRange(dec("0.3"), dec("0.3"))
	plungeSoftPlastics = entities.NewRange(dec("0.4"), dec("0.5"))
)

// WOCRange returns the recommended width of cut range in mm.
func (g *GuidelineCalculator) WOCRange(toolDiameter decimal.Decimal, style entities.CuttingStyle) entities.Range {
	if style == entities.WideShallow {
		return scaleRange(wideShallowWOC, toolDiameter)
	}
	return scaleRange(narrowDeepWOC, toolDiameter)
}

// DOCRange returns the recommended depth of cut range in mm.
func (g *GuidelineCalculator) DOCRange(toolDiameter decimal.Decimal, style entities.CuttingStyle) entities.Range {
	if style == entities.WideShallow {
		return scaleRange(wideShallowDOC, toolDiameter)
	}
	return scaleRange(narrowDeepDOC, toolDiameter)
}

// PlungeRateRange returns the recommended plunge rate range in mm/min for
// the given feedrate. Soft wood & hard plastics pin the plunge to a single
// value, so that range is degenerate.
func (g *GuidelineCalculator) PlungeRateRange(feedrate decimal.Decimal, material entities.MaterialType) entities.Range {
	switch material {
	case entities.HardWoodAluminium:
		return scaleRange(plungeHardWood, feedrate)
	case entities.SoftWoodHardPlastics:
		return scaleRange(plungeSoftWood, feedrate)
	default:
		return scaleRange(plungeSoftPlastics, feedrate)
	}
}

func scaleRange(multipliers entities.Range, scale decimal.Decimal) entities.Range {
	return entities.NewRange(multipliers.Lower.Mul(scale), multipliers.Upper.Mul(scale))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
