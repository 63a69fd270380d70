package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/millcalc/pkg/domain/entities"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultParams(t *testing.T) *entities.CuttingParameters {
	t.Helper()
	d := entities.DefaultValues()
	params, err := entities.NewCuttingParameters(d.Flutes, d.ToolDiameter, d.RPM, d.WidthOfCut, d.DepthOfCut, d.Chipload)
	require.NoError(t, err)
	return params
}

func TestCalculateDefaultScenario(t *testing.T) {
	service := NewCalculationService()

	outcome, err := service.Calculate(defaultParams(t), entities.SoftPlastics, entities.WideShallow)
	require.NoError(t, err)

	result := outcome.Result
	assert.True(t, result.Feedrate.Equal(dec("457.2")), "expected exactly 457.2, got %s", result.Feedrate)
	assert.True(t, result.WOCRange.Lower.Equal(dec("2.54")), "expected 2.54, got %s", result.WOCRange.Lower)
	assert.True(t, result.WOCRange.Upper.Equal(dec("6.35")), "expected 6.35, got %s", result.WOCRange.Upper)
	assert.True(t, result.DOCRange.Lower.Equal(dec("0.3175")), "expected 0.3175, got %s", result.DOCRange.Lower)
	assert.True(t, result.DOCRange.Upper.Equal(dec("0.635")), "expected 0.635, got %s", result.DOCRange.Upper)
	assert.True(t, result.PlungeRateRange.Lower.Equal(dec("182.88")), "expected 182.88, got %s", result.PlungeRateRange.Lower)
	assert.True(t, result.PlungeRateRange.Upper.Equal(dec("228.6")), "expected 228.6, got %s", result.PlungeRateRange.Upper)
	assert.Empty(t, result.Warnings)
	assert.False(t, outcome.HasWarnings())
}

func TestCalculateTrochoidalCut(t *testing.T) {
	service := NewCalculationService()

	params, err := entities.NewCuttingParameters(1, dec("6.35"), 18000, dec("1.5875"), dec("0.254"), dec("0.0254"))
	require.NoError(t, err)

	outcome, err := service.Calculate(params, entities.HardWoodAluminium, entities.NarrowDeep)
	require.NoError(t, err)

	// Quarter-diameter engagement scales the 457.2 base by 1/sqrt(0.75).
	assert.InDelta(t, 527.929, outcome.Result.Feedrate.InexactFloat64(), 0.01)
	assert.True(t, outcome.Result.WOCRange.Lower.Equal(dec("0.635")), "expected 0.635, got %s", outcome.Result.WOCRange.Lower)
	assert.True(t, outcome.Result.DOCRange.Upper.Equal(dec("19.05")), "expected 19.05, got %s", outcome.Result.DOCRange.Upper)
}

func TestCalculateWarnings(t *testing.T) {
	service := NewCalculationService()

	// 18000 RPM at 0.4 mm chipload is 7200 mm/min, over the 6000 ceiling.
	params, err := entities.NewCuttingParameters(1, dec("6.35"), 18000, dec("6.35"), dec("0.254"), dec("0.4"))
	require.NoError(t, err)

	outcome, err := service.Calculate(params, entities.SoftPlastics, entities.WideShallow)
	require.NoError(t, err)
	require.Len(t, outcome.Result.Warnings, 1)
	assert.Equal(t, "Calculated feedrate exceeds 6000 mm/min", outcome.Result.Warnings[0])

	// 0.6 mm chipload crosses the hard 10,000 mm/min sanity limit too.
	params, err = params.WithChipload(dec("0.6"))
	require.NoError(t, err)

	outcome, err = service.Calculate(params, entities.SoftPlastics, entities.WideShallow)
	require.NoError(t, err)
	require.Len(t, outcome.Result.Warnings, 2)
	assert.Equal(t, "Calculated feedrate exceeds 10,000 mm/min", outcome.Result.Warnings[1])
}

func TestCalculateRejectsUnknownEnums(t *testing.T) {
	service := NewCalculationService()
	params := defaultParams(t)

	_, err := service.Calculate(params, entities.MaterialType(42), entities.WideShallow)
	var unknownMaterial *entities.UnknownMaterialError
	require.ErrorAs(t, err, &unknownMaterial)

	_, err = service.Calculate(params, entities.SoftPlastics, entities.CuttingStyle(9))
	var unknownStyle *entities.UnknownStyleError
	require.ErrorAs(t, err, &unknownStyle)
}

func TestMaximizeFeedrateSuggestsNextRPM(t *testing.T) {
	// A generous ceiling lets the scan run to the top of the suggested
	// chipload range, which is the cue to spin faster.
	service := NewCalculationServiceWithConfig(EngineConfig{MaxFeedrate: dec("20000")})

	outcome, err := service.MaximizeFeedrate(defaultParams(t), entities.SoftPlastics, entities.WideShallow)
	require.NoError(t, err)

	// The suggested range for a 6.35 mm tool extrapolates to roughly
	// (0.05, 0.26936); the last whole scan step is 0.2693.
	assert.True(t, outcome.TotalChipload.Equal(dec("0.2693")), "expected 0.2693, got %s", outcome.TotalChipload)
	assert.True(t, outcome.Result.Feedrate.Equal(dec("4847.4")), "expected 4847.4, got %s", outcome.Result.Feedrate)
	assert.True(t, outcome.AtUpperBound, "the ceiling never bit, so the chipload bound was the limit")
	assert.Equal(t, 23000, outcome.NextRPM)
	assert.True(t, outcome.Parameters.Chipload.Equal(dec("0.2693")),
		"winning per-flute chipload should be carried back into the parameters, got %s", outcome.Parameters.Chipload)
	assert.Empty(t, outcome.Result.Warnings)
}

func TestMaximizeFeedrateAtTopOfLadder(t *testing.T) {
	service := NewCalculationServiceWithConfig(EngineConfig{MaxFeedrate: dec("20000")})

	params, err := defaultParams(t).WithRPM(32000)
	require.NoError(t, err)

	outcome, err := service.MaximizeFeedrate(params, entities.SoftPlastics, entities.WideShallow)
	require.NoError(t, err)

	assert.True(t, outcome.AtUpperBound)
	assert.Equal(t, 0, outcome.NextRPM, "no faster spindle setting exists above 32000")
}

func TestMaximizeFeedrateCeilingLimited(t *testing.T) {
	service := NewCalculationService()

	params, err := defaultParams(t).WithRPM(32000)
	require.NoError(t, err)

	outcome, err := service.MaximizeFeedrate(params, entities.SoftPlastics, entities.WideShallow)
	require.NoError(t, err)

	// 32000 RPM hits the 6000 mm/min ceiling exactly at 0.1875 mm total.
	assert.True(t, outcome.Result.Feedrate.Equal(dec("6000")), "expected 6000, got %s", outcome.Result.Feedrate)
	assert.True(t, outcome.TotalChipload.Equal(dec("0.1875")), "expected 0.1875, got %s", outcome.TotalChipload)
	assert.False(t, outcome.AtUpperBound)
	assert.Equal(t, 0, outcome.NextRPM)
	assert.Empty(t, outcome.Result.Warnings, "a feedrate at the ceiling is not over it")
}

func TestMaximizeFeedrateNoFeasibleFeedrate(t *testing.T) {
	service := NewCalculationServiceWithConfig(EngineConfig{MaxFeedrate: dec("100")})

	_, err := service.MaximizeFeedrate(defaultParams(t), entities.SoftPlastics, entities.WideShallow)
	require.ErrorIs(t, err, entities.ErrNoFeasibleFeedrate)
}

func TestSuggestChipload(t *testing.T) {
	service := NewCalculationService()

	outcome, err := service.SuggestChipload(dec("3.175"), 2, entities.SoftPlastics)
	require.NoError(t, err)

	assert.Equal(t, entities.SoftPlastics, outcome.Material)
	assert.Equal(t, 2, outcome.Flutes)
	assert.True(t, outcome.PerFlute.PerFlute)
	assert.True(t, outcome.PerFlute.Lower.Equal(dec("0.05")), "expected 0.05, got %s", outcome.PerFlute.Lower)
	assert.True(t, outcome.PerFlute.Upper.Equal(dec("0.13")), "expected 0.13, got %s", outcome.PerFlute.Upper)
	assert.False(t, outcome.Total.PerFlute)
	assert.True(t, outcome.Total.Lower.Equal(dec("0.1")), "expected 0.1, got %s", outcome.Total.Lower)
	assert.True(t, outcome.Total.Upper.Equal(dec("0.26")), "expected 0.26, got %s", outcome.Total.Upper)
}

func TestSuggestChiploadRejectsBadFlutes(t *testing.T) {
	service := NewCalculationService()

	_, err := service.SuggestChipload(dec("3.175"), 0, entities.SoftPlastics)
	var invalidErr *entities.InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "number of flutes", invalidErr.Field)
}

func TestServiceWithCustomTable(t *testing.T) {
	table, err := entities.NewChiploadTable(map[entities.MaterialType][]entities.ChiploadEntry{
		entities.SoftPlastics: {
			{Diameter: dec("2"), MinChipload: dec("0.01"), MaxChipload: dec("0.03")},
		},
	})
	require.NoError(t, err)

	service := NewCalculationServiceWithConfig(EngineConfig{Table: table})
	assert.Same(t, table, service.Table())

	outcome, err := service.SuggestChipload(dec("2"), 1, entities.SoftPlastics)
	require.NoError(t, err)
	assert.True(t, outcome.PerFlute.Lower.Equal(dec("0.01")), "expected 0.01, got %s", outcome.PerFlute.Lower)
	assert.True(t, outcome.PerFlute.Upper.Equal(dec("0.03")), "expected 0.03, got %s", outcome.PerFlute.Upper)

	// Materials missing from the custom table are unknown to the service.
	_, err = service.SuggestChipload(dec("2"), 1, entities.HardWoodAluminium)
	var unknownErr *entities.UnknownMaterialError
	require.ErrorAs(t, err, &unknownErr)
}

func TestServiceConfigFallbacks(t *testing.T) {
	service := NewCalculationServiceWithConfig(EngineConfig{})
	assert.True(t, service.MaxFeedrate().Equal(dec("6000")),
		"zero config falls back to the stock ceiling, got %s", service.MaxFeedrate())
	assert.Same(t, entities.DefaultChiploadTable(), service.Table())
}
