package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CuttingParameters is the validated set of inputs for a feedrate
// calculation. Construct through NewCuttingParameters and treat as immutable.
type CuttingParameters struct {
	Flutes       int
	ToolDiameter decimal.Decimal // mm
	RPM          int
	WidthOfCut   decimal.Decimal // mm
	DepthOfCut   decimal.Decimal // mm
	Chipload     decimal.Decimal // mm per flute
}

// NewCuttingParameters validates and creates cutting parameters. All values
// must be positive and the width of cut cannot exceed the tool diameter.
func NewCuttingParameters(flutes int, toolDiameter decimal.Decimal, rpm int, widthOfCut, depthOfCut, chipload decimal.Decimal) (*CuttingParameters, error) {
	if flutes <= 0 {
		return nil, &InvalidParameterError{
			Field:  "number of flutes",
			Reason: fmt.Sprintf("must be positive, got %d", flutes),
		}
	}
	if !toolDiameter.IsPositive() {
		return nil, &InvalidParameterError{
			Field:  "tool diameter",
			Reason: fmt.Sprintf("must be positive, got %s", toolDiameter),
		}
	}
	if rpm <= 0 {
		return nil, &InvalidParameterError{
			Field:  "RPM",
			Reason: fmt.Sprintf("must be positive, got %d", rpm),
		}
	}
	if !widthOfCut.IsPositive() {
		return nil, &InvalidParameterError{
			Field:  "width of cut",
			Reason: fmt.Sprintf("must be positive, got %s", widthOfCut),
		}
	}
	if !depthOfCut.IsPositive() {
		return nil, &InvalidParameterError{
			Field:  "depth of cut",
			Reason: fmt.Sprintf("must be positive, got %s", depthOfCut),
		}
	}
	if !chipload.IsPositive() {
		return nil, &InvalidParameterError{
			Field:  "chipload",
			Reason: fmt.Sprintf("must be positive, got %s", chipload),
		}
	}
	if widthOfCut.GreaterThan(toolDiameter) {
		return nil, &InvalidParameterError{
			Field:  "width of cut",
			Reason: fmt.Sprintf("cannot exceed tool diameter, got %s > %s", widthOfCut, toolDiameter),
		}
	}

	return &CuttingParameters{
		Flutes:       flutes,
		ToolDiameter: toolDiameter,
		RPM:          rpm,
		WidthOfCut:   widthOfCut,
		DepthOfCut:   depthOfCut,
		Chipload:     chipload,
	}, nil
}

// WithChipload returns a revalidated copy of the parameters with the
// per-flute chipload replaced.
func (p *CuttingParameters) WithChipload(chipload decimal.Decimal) (*CuttingParameters, error) {
	return NewCuttingParameters(p.Flutes, p.ToolDiameter, p.RPM, p.WidthOfCut, p.DepthOfCut, chipload)
}

// WithRPM returns a revalidated copy of the parameters with the spindle speed
// replaced.
func (p *CuttingParameters) WithRPM(rpm int) (*CuttingParameters, error) {
	return NewCuttingParameters(p.Flutes, p.ToolDiameter, rpm, p.WidthOfCut, p.DepthOfCut, p.Chipload)
}

// TotalChipload returns the chipload summed across all flutes.
func (p *CuttingParameters) TotalChipload() decimal.Decimal {
	return p.Chipload.Mul(decimal.NewFromInt(int64(p.Flutes)))
}
