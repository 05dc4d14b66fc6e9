package services

import (
	"fmt"
	"math"
	"sort"

	"district-champions-system/models"
	"district-champions-system/utils"
	"district-champions-system/workers"

	"gorm.io/gorm"
)

// DefaultLeaderboardLimit caps the state leaderboard response when the
// caller does not ask for a size.
const DefaultLeaderboardLimit = 35

type LeaderboardService struct {
	DB    *gorm.DB
	Ranks *workers.RankWriter
}

func NewLeaderboardService(db *gorm.DB, ranks *workers.RankWriter) *LeaderboardService {
	return &LeaderboardService{DB: db, Ranks: ranks}
}

// StateTreeTotals carries stored per-state tree counts into the aggregation.
type StateTreeTotals struct {
	EntryID             string
	TotalTreesPlanted   int64
	TotalTreesDonated   int64
	ExistingForestTrees int64
}

// AggregateStates folds district records into per-state population-weighted
// metrics and merges in stored tree totals. States with zero population are
// skipped entirely — there is no demand to divide by. Pure apart from its
// inputs.
func AggregateStates(districts []models.District, totals map[string]StateTreeTotals) []models.StateMetric {
	type stateAccum struct {
		population        int64
		weightedAQI       float64
		weightedSoil      float64
		weightedDisasters float64
	}

	acc := make(map[string]*stateAccum)
	for i := range districts {
		d := &districts[i]
		if d.State == "" {
			continue
		}
		a := acc[d.State]
		if a == nil {
			a = &stateAccum{}
			acc[d.State] = a
		}
		pop := d.Population
		if pop < 0 {
			pop = 0
		}
		a.population += pop

		ind := models.NormalizeDistrict(d)
		fpop := float64(pop)
		a.weightedAQI += ind.AQI * fpop
		a.weightedSoil += ind.SoilQuality * fpop
		a.weightedDisasters += ind.DisasterFrequency * fpop
	}

	metrics := make([]models.StateMetric, 0, len(acc))
	for state, a := range acc {
		if a.population == 0 {
			continue
		}
		fpop := float64(a.population)
		avgAQI := a.weightedAQI / fpop
		avgSoil := a.weightedSoil / fpop
		avgDisasters := a.weightedDisasters / fpop

		t := totals[state]
		totalTrees := t.ExistingForestTrees + t.TotalTreesPlanted + t.TotalTreesDonated

		o2Needed := O2DemandKgPerYear(a.population, avgAQI, avgSoil, avgDisasters)
		o2Supply := O2SupplyKgPerYear(totalTrees, avgSoil)
		existingForestO2 := O2SupplyKgPerYear(t.ExistingForestTrees, avgSoil)

		// Zero demand maps to 0% met, never a division by zero.
		pct := 0.0
		if o2Needed > 0 {
			pct = o2Supply / o2Needed * 100
		}
		if pct < 0 {
			pct = 0
		} else if pct > 100 {
			pct = 100
		}

		id := t.EntryID
		if id == "" {
			id = utils.StateDocID(state)
		}

		metrics = append(metrics, models.StateMetric{
			ID:                  id,
			State:               state,
			Population:          a.population,
			TotalTreesPlanted:   t.TotalTreesPlanted,
			TotalTreesDonated:   t.TotalTreesDonated,
			ExistingForestTrees: t.ExistingForestTrees,
			TotalTrees:          totalTrees,
			O2Needed:            int64(math.Round(o2Needed)),
			O2Supply:            int64(math.Round(o2Supply)),
			ExistingForestO2:    int64(math.Round(existingForestO2)),
			PercentageMet:       math.Round(pct*100) / 100,
			AvgAQI:              int(math.Round(avgAQI)),
			AvgSoilQuality:      int(math.Round(avgSoil)),
		})
	}
	return metrics
}

// RankStateMetrics orders metrics into a strict total order and assigns
// 1-based ranks: percentageMet desc, then totalTrees desc, then state name
// asc. No ties are left unresolved, so repeated runs over identical input
// produce identical output.
func RankStateMetrics(metrics []models.StateMetric) []models.StateMetric {
	sort.SliceStable(metrics, func(i, j int) bool {
		a, b := &metrics[i], &metrics[j]
		if a.PercentageMet != b.PercentageMet {
			return a.PercentageMet > b.PercentageMet
		}
		if a.TotalTrees != b.TotalTrees {
			return a.TotalTrees > b.TotalTrees
		}
		return a.State < b.State
	})
	for i := range metrics {
		metrics[i].Rank = i + 1
	}
	return metrics
}

// StateLeaderboard re-derives the full leaderboard from source data and
// returns the top entries. Rank write-backs are dispatched to the background
// writer after the response slice is final; their outcome never affects the
// response.
func (s *LeaderboardService) StateLeaderboard(limit int) ([]models.StateMetric, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	var districts []models.District
	if err := s.DB.Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("fetching districts: %w", err)
	}

	var entries []models.StateLeaderboardEntry
	if err := s.DB.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("fetching leaderboard entries: %w", err)
	}

	totals := make(map[string]StateTreeTotals, len(entries))
	for _, e := range entries {
		totals[e.State] = StateTreeTotals{
			EntryID:             e.ID,
			TotalTreesPlanted:   e.TotalTreesPlanted,
			TotalTreesDonated:   e.TotalTreesDonated,
			ExistingForestTrees: e.ExistingForestTrees,
		}
	}

	ranked := RankStateMetrics(AggregateStates(districts, totals))
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}

	// Only states with a stored entry get a rank annotation written back.
	updates := make([]workers.RankUpdate, 0, len(ranked))
	for _, m := range ranked {
		if _, ok := totals[m.State]; !ok {
			continue
		}
		updates = append(updates, workers.RankUpdate{
			EntryID:      m.ID,
			Rank:         m.Rank,
			OxygenOffset: float64(m.O2Supply),
		})
	}
	if s.Ranks != nil {
		s.Ranks.Enqueue(updates)
	}

	return ranked, nil
}
