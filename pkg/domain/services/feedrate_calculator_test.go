package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/millcalc/pkg/domain/entities"
)

func TestFeedrateFullEngagement(t *testing.T) {
	calc := NewFeedrateCalculator()

	// Full slot cut: no chip thinning, feedrate is exactly rpm * chipload * flutes.
	feedrate, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("6.35"), dec("6.35"))
	require.NoError(t, err)
	assert.True(t, feedrate.Equal(dec("457.2")), "expected exactly 457.2, got %s", feedrate)

	feedrate, err = calc.Feedrate(2, 10000, dec("0.05"), dec("6"), dec("6"))
	require.NoError(t, err)
	assert.True(t, feedrate.Equal(dec("1000")), "expected exactly 1000, got %s", feedrate)
}

func TestFeedrateHalfDiameterBoundary(t *testing.T) {
	calc := NewFeedrateCalculator()

	// At exactly half the diameter the correction factor is 1, so the
	// corrected feedrate must equal the base feedrate exactly.
	atHalf, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("3.175"), dec("6.35"))
	require.NoError(t, err)
	assert.True(t, atHalf.Equal(dec("457.2")), "expected base feedrate at woc = d/2, got %s", atHalf)

	justAbove, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("3.2"), dec("6.35"))
	require.NoError(t, err)
	assert.True(t, justAbove.Equal(dec("457.2")), "expected base feedrate just above d/2, got %s", justAbove)
}

func TestFeedrateTrochoidalCorrection(t *testing.T) {
	calc := NewFeedrateCalculator()

	// Quarter-diameter engagement: correction = sqrt(1 - 0.5^2) = sqrt(0.75),
	// so the feedrate is 457.2 / 0.86602... = 527.93 mm/min.
	feedrate, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("1.5875"), dec("6.35"))
	require.NoError(t, err)
	assert.InDelta(t, 527.929, feedrate.InexactFloat64(), 0.01)

	base, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("6.35"), dec("6.35"))
	require.NoError(t, err)
	assert.True(t, feedrate.GreaterThan(base), "trochoidal feedrate must exceed the base feedrate")
}

func TestFeedrateGrowsAsEngagementShrinks(t *testing.T) {
	calc := NewFeedrateCalculator()

	// Below d/2, narrower cuts thin the chip more and need faster feeds.
	widths := []string{"3.175", "2", "1", "0.5"}
	previous := decimal.Zero
	for _, width := range widths {
		feedrate, err := calc.Feedrate(1, 18000, dec("0.0254"), dec(width), dec("6.35"))
		require.NoError(t, err, "width %s", width)
		assert.True(t, feedrate.GreaterThan(previous),
			"expected feedrate at woc %s to exceed %s, got %s", width, previous, feedrate)
		previous = feedrate
	}
}

func TestFeedrateScalesWithFlutesAndRPM(t *testing.T) {
	calc := NewFeedrateCalculator()

	single, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("6.35"), dec("6.35"))
	require.NoError(t, err)

	double, err := calc.Feedrate(2, 18000, dec("0.0254"), dec("6.35"), dec("6.35"))
	require.NoError(t, err)
	assert.True(t, double.Equal(single.Mul(dec("2"))), "two flutes must double the feedrate")

	faster, err := calc.Feedrate(1, 36000, dec("0.0254"), dec("6.35"), dec("6.35"))
	require.NoError(t, err)
	assert.True(t, faster.Equal(single.Mul(dec("2"))), "doubling RPM must double the feedrate")
}

func TestFeedrateValidation(t *testing.T) {
	calc := NewFeedrateCalculator()

	tests := []struct {
		name         string
		flutes       int
		rpm          int
		chipload     string
		widthOfCut   string
		toolDiameter string
		errorField   string
	}{
		{name: "zero flutes", flutes: 0, rpm: 18000, chipload: "0.0254", widthOfCut: "6.35", toolDiameter: "6.35", errorField: "number of flutes"},
		{name: "zero rpm", flutes: 1, rpm: 0, chipload: "0.0254", widthOfCut: "6.35", toolDiameter: "6.35", errorField: "RPM"},
		{name: "negative chipload", flutes: 1, rpm: 18000, chipload: "-0.01", widthOfCut: "6.35", toolDiameter: "6.35", errorField: "chipload"},
		{name: "zero width of cut", flutes: 1, rpm: 18000, chipload: "0.0254", widthOfCut: "0", toolDiameter: "6.35", errorField: "width of cut"},
		{name: "zero tool diameter", flutes: 1, rpm: 18000, chipload: "0.0254", widthOfCut: "6.35", toolDiameter: "0", errorField: "tool diameter"},
		{name: "width exceeds diameter", flutes: 1, rpm: 18000, chipload: "0.0254", widthOfCut: "7", toolDiameter: "6.35", errorField: "width of cut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Feedrate(tt.flutes, tt.rpm, dec(tt.chipload), dec(tt.widthOfCut), dec(tt.toolDiameter))
			require.Error(t, err)

			var invalidErr *entities.InvalidParameterError
			require.True(t, errors.As(err, &invalidErr), "expected InvalidParameterError, got %T", err)
			assert.Equal(t, tt.errorField, invalidErr.Field)
		})
	}
}

func TestFeedrateRejectsVanishingEngagement(t *testing.T) {
	calc := NewFeedrateCalculator()

	// A width of cut this small rounds to a zero engagement ratio, which
	// would divide the base feedrate by zero.
	_, err := calc.Feedrate(1, 18000, dec("0.0254"), dec("0.0000000000000000001"), dec("6.35"))
	require.Error(t, err)

	var invalidErr *entities.InvalidParameterError
	require.True(t, errors.As(err, &invalidErr), "expected InvalidParameterError, got %T", err)
	assert.Equal(t, "width of cut", invalidErr.Field)
}
