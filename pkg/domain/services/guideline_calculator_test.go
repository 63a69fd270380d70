package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsinha/millcalc/pkg/domain/entities"
)

func TestWOCRange(t *testing.T) {
	calc := NewGuidelineCalculator()

	tests := []struct {
		name     string
		style    entities.CuttingStyle
		diameter string
		lower    string
		upper    string
	}{
		{name: "wide and shallow quarter inch", style: entities.WideShallow, diameter: "6.35", lower: "2.54", upper: "6.35"},
		{name: "narrow and deep quarter inch", style: entities.NarrowDeep, diameter: "6.35", lower: "0.635", upper: "1.5875"},
		{name: "wide and shallow eighth inch", style: entities.WideShallow, diameter: "3.175", lower: "1.27", upper: "3.175"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := calc.WOCRange(dec(tt.diameter), tt.style)
			assert.True(t, r.Lower.Equal(dec(tt.lower)), "expected lower %s, got %s", tt.lower, r.Lower)
			assert.True(t, r.Upper.Equal(dec(tt.upper)), "expected upper %s, got %s", tt.upper, r.Upper)
		})
	}
}

func TestDOCRange(t *testing.T) {
	calc := NewGuidelineCalculator()

	tests := []struct {
		name     string
		style    entities.CuttingStyle
		diameter string
		lower    string
		upper    string
	}{
		{name: "wide and shallow quarter inch", style: entities.WideShallow, diameter: "6.35", lower: "0.3175", upper: "0.635"},
		{name: "narrow and deep quarter inch", style: entities.NarrowDeep, diameter: "6.35", lower: "6.35", upper: "19.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := calc.DOCRange(dec(tt.diameter), tt.style)
			assert.True(t, r.Lower.Equal(dec(tt.lower)), "expected lower %s, got %s", tt.lower, r.Lower)
			assert.True(t, r.Upper.Equal(dec(tt.upper)), "expected upper %s, got %s", tt.upper, r.Upper)
		})
	}
}

func TestPlungeRateRange(t *testing.T) {
	calc := NewGuidelineCalculator()

	tests := []struct {
		name     string
		material entities.MaterialType
		feedrate string
		lower    string
		upper    string
	}{
		{name: "hard wood and aluminium", material: entities.HardWoodAluminium, feedrate: "457.2", lower: "45.72", upper: "137.16"},
		{name: "soft wood and hard plastics", material: entities.SoftWoodHardPlastics, feedrate: "457.2", lower: "137.16", upper: "137.16"},
		{name: "soft plastics", material: entities.SoftPlastics, feedrate: "457.2", lower: "182.88", upper: "228.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := calc.PlungeRateRange(dec(tt.feedrate), tt.material)
			assert.True(t, r.Lower.Equal(dec(tt.lower)), "expected lower %s, got %s", tt.lower, r.Lower)
			assert.True(t, r.Upper.Equal(dec(tt.upper)), "expected upper %s, got %s", tt.upper, r.Upper)
		})
	}
}

func TestPlungeRateRangeSoftWoodIsDegenerate(t *testing.T) {
	calc := NewGuidelineCalculator()

	r := calc.PlungeRateRange(dec("1000"), entities.SoftWoodHardPlastics)
	assert.True(t, r.Lower.Equal(r.Upper), "soft wood plunge guidance is a single value, got (%s, %s)", r.Lower, r.Upper)
	assert.True(t, r.Lower.Equal(dec("300")), "expected 300, got %s", r.Lower)
}

func TestGuidelineRangesScaleLinearly(t *testing.T) {
	calc := NewGuidelineCalculator()

	small := calc.WOCRange(dec("3"), entities.WideShallow)
	large := calc.WOCRange(dec("6"), entities.WideShallow)
	assert.True(t, large.Lower.Equal(small.Lower.Mul(dec("2"))), "doubling the diameter must double the bounds")
	assert.True(t, large.Upper.Equal(small.Upper.Mul(dec("2"))), "doubling the diameter must double the bounds")
}
