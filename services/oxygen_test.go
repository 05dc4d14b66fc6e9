package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAQIPenaltyFactorBreakpoints(t *testing.T) {
	tests := []struct {
		name string
		aqi  float64
		want float64
	}{
		{"clean air", 10, 1.0},
		{"boundary belongs to better bucket", 50, 1.0},
		{"just past first boundary", 51, 1.05},
		{"moderate boundary", 100, 1.05},
		{"unhealthy boundary", 150, 1.15},
		{"very unhealthy boundary", 200, 1.30},
		{"severe boundary", 300, 1.50},
		{"hazardous", 301, 1.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AQIPenaltyFactor(tt.aqi))
		})
	}
}

func TestAQIPenaltyFactorMonotonic(t *testing.T) {
	prev := 0.0
	for aqi := 0.0; aqi <= 500; aqi += 0.5 {
		factor := AQIPenaltyFactor(aqi)
		require.GreaterOrEqual(t, factor, prev, "factor must not decrease at AQI %.1f", aqi)
		prev = factor
	}
}

func TestSoilDegradationFactor(t *testing.T) {
	tests := []struct {
		soil float64
		want float64
	}{
		{100, 1.0},
		{80, 1.0},
		{79.9, 1.1},
		{60, 1.1},
		{59.9, 1.3},
		{40, 1.3},
		{39.9, 1.6},
		{0, 1.6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SoilDegradationFactor(tt.soil), "soil quality %.1f", tt.soil)
	}
}

func TestDisasterLossFactor(t *testing.T) {
	tests := []struct {
		freq float64
		want float64
	}{
		{0, 1.0},
		{1, 1.05},
		{2, 1.05},
		{5, 1.15},
		{10, 1.30},
		{11, 1.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisasterLossFactor(tt.freq), "disaster frequency %.0f", tt.freq)
	}
}

func TestSoilTreeAdjustment(t *testing.T) {
	assert.Equal(t, 0.7, SoilTreeAdjustment(0))
	assert.Equal(t, 1.0, SoilTreeAdjustment(100))
	assert.Equal(t, 0.85, SoilTreeAdjustment(85))

	// Linear above the floor, clamped at 70% of nominal below it.
	for soil := 0.0; soil <= 100; soil++ {
		assert.Equal(t, math.Max(0.7, soil/100), SoilTreeAdjustment(soil))
	}
}

func TestO2DemandMatchesFormula(t *testing.T) {
	got := O2DemandKgPerYear(1_000_000, 80, 70, 1)

	// population × 550 L/day × 365 days × 0.001429 kg/L × penalty product,
	// with factors 1.05 (AQI 80), 1.1 (soil 70), 1.05 (1 disaster).
	want := 1_000_000 * HumanO2LitersPerDay * DaysPerYear * LitersToKgO2 * 1.05 * 1.1 * 1.05
	assert.InDelta(t, want, got, 1e-6)
}

func TestO2DemandZeroPopulation(t *testing.T) {
	assert.Zero(t, O2DemandKgPerYear(0, 100, 65, 2))
	assert.Zero(t, O2DemandKgPerYear(-5, 100, 65, 2))
}

func TestO2SupplyAppliesSoilAdjustment(t *testing.T) {
	// Soil 50 sits below the floor, so trees produce at 70% of nominal.
	assert.InDelta(t, 100*TreeO2KgPerYear*0.7, O2SupplyKgPerYear(100, 50), 1e-9)
	assert.Zero(t, O2SupplyKgPerYear(0, 80))
}

func TestFallbackLifespanO2(t *testing.T) {
	assert.Equal(t, 16500.0, FallbackLifespanO2(3))
	assert.Equal(t, 5500.0, FallbackLifespanO2(1))
}
