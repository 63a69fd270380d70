package services

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/millcalc/pkg/application/dto"
	"github.com/vsinha/millcalc/pkg/domain/entities"
	domainservices "github.com/vsinha/millcalc/pkg/domain/services"
)

// EngineConfig tunes the calculation service. Zero-valued fields fall back
// to the stock configuration.
type EngineConfig struct {
	// Table overrides the built-in chipload reference table.
	Table *entities.ChiploadTable
	// MaxFeedrate is the machine's feedrate ceiling in mm/min. It bounds the
	// maximizer and triggers the soft feedrate warning.
	MaxFeedrate decimal.Decimal
	// ChiploadIncrement is the maximizer's scan step in mm of total chipload.
	ChiploadIncrement decimal.Decimal
}

// CalculationService orchestrates the domain calculators into complete,
// presentation-ready outcomes. It is stateless and safe for concurrent use.
type CalculationService struct {
	table       *entities.ChiploadTable
	calculator  *domainservices.FeedrateCalculator
	suggester   *domainservices.ChiploadSuggester
	guidelines  *domainservices.GuidelineCalculator
	maximizer   *domainservices.FeedrateMaximizer
	maxFeedrate decimal.Decimal
}

// NewCalculationService creates a service with the built-in chipload table
// and stock limits.
func NewCalculationService() *CalculationService {
	return NewCalculationServiceWithConfig(EngineConfig{})
}

// NewCalculationServiceWithConfig creates a service with a custom table or
// limits.
func NewCalculationServiceWithConfig(config EngineConfig) *CalculationService {
	defaults := entities.DefaultValues()

	table := config.Table
	if table == nil {
		table = entities.DefaultChiploadTable()
	}
	maxFeedrate := config.MaxFeedrate
	if !maxFeedrate.IsPositive() {
		maxFeedrate = defaults.MaxFeedrate
	}

	calculator := domainservices.NewFeedrateCalculator()
	return &CalculationService{
		table:       table,
		calculator:  calculator,
		suggester:   domainservices.NewChiploadSuggester(table),
		guidelines:  domainservices.NewGuidelineCalculator(),
		maximizer:   domainservices.NewFeedrateMaximizer(calculator, config.ChiploadIncrement),
		maxFeedrate: maxFeedrate,
	}
}

// MaxFeedrate returns the feedrate ceiling the service was configured with.
func (s *CalculationService) MaxFeedrate() decimal.Decimal {
	return s.maxFeedrate
}

// Table returns the chipload reference table the service reads from.
func (s *CalculationService) Table() *entities.ChiploadTable {
	return s.table
}

// Calculate computes the feedrate and companion guidelines for fully
// specified cutting parameters.
func (s *CalculationService) Calculate(params *entities.CuttingParameters, material entities.MaterialType, style entities.CuttingStyle) (*dto.CalculationOutcome, error) {
	if !material.Valid() {
		return nil, &entities.UnknownMaterialError{Material: material.String()}
	}
	if !style.Valid() {
		return nil, &entities.UnknownStyleError{Style: style.String()}
	}

	feedrate, err := s.calculator.Feedrate(params.Flutes, params.RPM, params.Chipload, params.WidthOfCut, params.ToolDiameter)
	if err != nil {
		return nil, err
	}

	return s.assembleOutcome(params, material, style, feedrate), nil
}

// MaximizeFeedrate finds the highest feedrate at or below the service's
// ceiling within the material's suggested chipload range, then assembles the
// full outcome at the winning chipload. When the scan tops out at the
// chipload bound rather than the ceiling, the outcome carries the next
// spindle speed worth trying.
func (s *CalculationService) MaximizeFeedrate(params *entities.CuttingParameters, material entities.MaterialType, style entities.CuttingStyle) (*dto.MaximizeOutcome, error) {
	if !material.Valid() {
		return nil, &entities.UnknownMaterialError{Material: material.String()}
	}
	if !style.Valid() {
		return nil, &entities.UnknownStyleError{Style: style.String()}
	}

	suggested, err := s.suggester.Suggest(params.ToolDiameter, material)
	if err != nil {
		return nil, err
	}

	found, err := s.maximizer.Maximize(params, suggested, s.maxFeedrate)
	if err != nil {
		return nil, err
	}

	perFlute := found.TotalChipload.Div(decimal.NewFromInt(int64(params.Flutes)))
	winner, err := params.WithChipload(perFlute)
	if err != nil {
		return nil, err
	}

	outcome := &dto.MaximizeOutcome{
		CalculationOutcome: *s.assembleOutcome(winner, material, style, found.Feedrate),
		TotalChipload:      found.TotalChipload,
		AtUpperBound:       found.AtUpperBound,
	}
	if found.AtUpperBound {
		if next, ok := entities.NextRPM(params.RPM); ok {
			outcome.NextRPM = next
		}
	}
	return outcome, nil
}

// SuggestChipload recommends a chipload range for a tool and material, in
// both per-flute and total terms.
func (s *CalculationService) SuggestChipload(toolDiameter decimal.Decimal, flutes int, material entities.MaterialType) (*dto.SuggestionOutcome, error) {
	if !material.Valid() {
		return nil, &entities.UnknownMaterialError{Material: material.String()}
	}

	perFlute, err := s.suggester.Suggest(toolDiameter, material)
	if err != nil {
		return nil, err
	}
	total, err := perFlute.ToTotal(flutes)
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionOutcome{
		Material:     material,
		ToolDiameter: toolDiameter,
		Flutes:       flutes,
		PerFlute:     perFlute,
		Total:        total,
	}, nil
}

func (s *CalculationService) assembleOutcome(params *entities.CuttingParameters, material entities.MaterialType, style entities.CuttingStyle, feedrate decimal.Decimal) *dto.CalculationOutcome {
	wocRange := s.guidelines.WOCRange(params.ToolDiameter, style)
	docRange := s.guidelines.DOCRange(params.ToolDiameter, style)
	plungeRange := s.guidelines.PlungeRateRange(feedrate, material)

	return &dto.CalculationOutcome{
		Parameters: params,
		Material:   material,
		Style:      style,
		Result:     entities.NewCalculationResult(feedrate, wocRange, docRange, plungeRange, s.maxFeedrate),
	}
}
