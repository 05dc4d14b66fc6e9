package services

import (
	"testing"

	"district-champions-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func TestAggregateStatesWeightedAverages(t *testing.T) {
	districts := []models.District{
		{ID: "s-a", Name: "A", State: "Testland", Population: 1000, AvgAQI: f64(60), SoilQuality: f64(80), DisasterFrequency: iptr(0)},
		{ID: "s-b", Name: "B", State: "Testland", Population: 3000, AvgAQI: f64(100), SoilQuality: f64(60), DisasterFrequency: iptr(4)},
	}

	metrics := AggregateStates(districts, nil)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, "Testland", m.State)
	assert.Equal(t, int64(4000), m.Population)
	// (60×1000 + 100×3000) / 4000 = 90
	assert.Equal(t, 90, m.AvgAQI)
	// (80×1000 + 60×3000) / 4000 = 65
	assert.Equal(t, 65, m.AvgSoilQuality)
}

func TestAggregateStatesDefaultsMissingIndicators(t *testing.T) {
	districts := []models.District{
		{ID: "d", Name: "D", State: "Testland", Population: 500},
	}

	metrics := AggregateStates(districts, nil)
	require.Len(t, metrics, 1)
	assert.Equal(t, 100, metrics[0].AvgAQI)
	assert.Equal(t, 65, metrics[0].AvgSoilQuality)
}

func TestAggregateStatesSkipsZeroPopulation(t *testing.T) {
	districts := []models.District{
		{ID: "ghost", Name: "Ghost", State: "Emptyland", Population: 0},
		{ID: "d", Name: "D", State: "Testland", Population: 100},
	}

	metrics := AggregateStates(districts, nil)
	require.Len(t, metrics, 1)
	assert.Equal(t, "Testland", metrics[0].State)
}

func TestAggregateStatesSkipsBlankState(t *testing.T) {
	districts := []models.District{
		{ID: "orphan", Name: "Orphan", Population: 100},
	}
	assert.Empty(t, AggregateStates(districts, nil))
}

func TestAggregateStatesMergesTreeTotals(t *testing.T) {
	districts := []models.District{
		{ID: "d", Name: "D", State: "Testland", Population: 1_000_000},
	}
	totals := map[string]StateTreeTotals{
		"Testland": {
			EntryID:             "testland",
			TotalTreesPlanted:   200,
			TotalTreesDonated:   300,
			ExistingForestTrees: 500,
		},
	}

	metrics := AggregateStates(districts, totals)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, "testland", m.ID)
	assert.Equal(t, int64(1000), m.TotalTrees)
	assert.Equal(t, int64(200), m.TotalTreesPlanted)
	assert.Equal(t, int64(300), m.TotalTreesDonated)
	assert.Equal(t, int64(500), m.ExistingForestTrees)
	assert.Greater(t, m.O2Supply, m.ExistingForestO2)
	assert.Positive(t, m.O2Needed)
}

func TestAggregateStatesPercentageClamped(t *testing.T) {
	// One person, a whole forest: raw ratio far exceeds 100.
	districts := []models.District{
		{ID: "d", Name: "D", State: "Forestland", Population: 1},
	}
	totals := map[string]StateTreeTotals{
		"Forestland": {EntryID: "forestland", ExistingForestTrees: 10_000_000},
	}

	metrics := AggregateStates(districts, totals)
	require.Len(t, metrics, 1)
	assert.Equal(t, 100.0, metrics[0].PercentageMet)
}

func TestAggregateStatesNoTreesMeansZeroPercent(t *testing.T) {
	districts := []models.District{
		{ID: "d", Name: "D", State: "Bareland", Population: 1000},
	}

	metrics := AggregateStates(districts, nil)
	require.Len(t, metrics, 1)
	assert.Zero(t, metrics[0].PercentageMet)
	assert.Zero(t, metrics[0].O2Supply)
}

func TestAggregateStatesFallsBackToStateSlugID(t *testing.T) {
	districts := []models.District{
		{ID: "d", Name: "D", State: "Tamil Nadu", Population: 100},
	}

	metrics := AggregateStates(districts, nil)
	require.Len(t, metrics, 1)
	assert.Equal(t, "tamil-nadu", metrics[0].ID)
}

func TestRankStateMetricsTotalOrder(t *testing.T) {
	metrics := []models.StateMetric{
		{State: "Beta", PercentageMet: 50, TotalTrees: 100},
		{State: "Alpha", PercentageMet: 50, TotalTrees: 100},
		{State: "Gamma", PercentageMet: 80, TotalTrees: 10},
		{State: "Delta", PercentageMet: 50, TotalTrees: 200},
	}

	ranked := RankStateMetrics(metrics)
	require.Len(t, ranked, 4)

	// percentageMet desc, then totalTrees desc, then name asc.
	assert.Equal(t, "Gamma", ranked[0].State)
	assert.Equal(t, "Delta", ranked[1].State)
	assert.Equal(t, "Alpha", ranked[2].State)
	assert.Equal(t, "Beta", ranked[3].State)
	for i, m := range ranked {
		assert.Equal(t, i+1, m.Rank)
	}
}

func TestRankStateMetricsDeterministic(t *testing.T) {
	build := func() []models.StateMetric {
		return []models.StateMetric{
			{State: "B", PercentageMet: 40, TotalTrees: 5},
			{State: "A", PercentageMet: 40, TotalTrees: 5},
			{State: "C", PercentageMet: 40, TotalTrees: 9},
		}
	}

	first := RankStateMetrics(build())
	second := RankStateMetrics(build())
	assert.Equal(t, first, second)

	// Re-ranking an already ranked slice changes nothing.
	again := RankStateMetrics(first)
	assert.Equal(t, second, again)
}
