package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"district-champions-system/models"
	"district-champions-system/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// SumLeaderboardTotals adds up tree and oxygen totals across stored state
// entries. TotalO2Supply is preferred; older rows only carry the
// oxygenOffset annotation.
func SumLeaderboardTotals(entries []models.StateLeaderboardEntry) (totalTrees int64, totalOxygen float64) {
	for _, e := range entries {
		totalTrees += e.TotalTrees
		if e.TotalO2Supply > 0 {
			totalOxygen += e.TotalO2Supply
		} else {
			totalOxygen += e.OxygenOffset
		}
	}
	return totalTrees, totalOxygen
}

// RecomputeGlobalStats rebuilds the global summary and overwrites the
// singleton snapshot row wholesale, so dashboard reads stay a single cheap
// fetch.
func (s *StatsService) RecomputeGlobalStats() (*models.GlobalStats, error) {
	var totalDistricts int64
	if err := s.DB.Model(&models.District{}).Count(&totalDistricts).Error; err != nil {
		return nil, fmt.Errorf("counting districts: %w", err)
	}

	var entries []models.StateLeaderboardEntry
	if err := s.DB.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("fetching leaderboard entries: %w", err)
	}
	totalTrees, totalOxygen := SumLeaderboardTotals(entries)

	stats := &models.GlobalStats{
		ID:             models.GlobalStatsID,
		TotalDistricts: totalDistricts,
		TotalTrees:     totalTrees,
		TotalOxygen:    totalOxygen,
		LastUpdated:    time.Now(),
	}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(stats).Error; err != nil {
		return nil, fmt.Errorf("persisting global stats: %w", err)
	}

	s.publishSnapshot(stats)

	log.Printf("✅ Global stats updated: %d districts, %d trees, %.0f kg O2",
		stats.TotalDistricts, stats.TotalTrees, stats.TotalOxygen)
	return stats, nil
}

// publishSnapshot pushes the snapshot JSON to R2 for CDN reads. Skipped when
// R2 is not configured; a failed upload is logged but does not fail the
// recompute — the database row stays the source of truth.
func (s *StatsService) publishSnapshot(stats *models.GlobalStats) {
	if !utils.R2Enabled() {
		return
	}
	url, err := utils.UploadJSONToR2("stats/global.json", stats)
	if err != nil {
		log.Printf("⚠️ Failed to publish stats snapshot to R2: %v", err)
		return
	}
	log.Printf("📤 Stats snapshot published: %s", url)
}

// GetGlobalStats reads the persisted snapshot. Returns (nil, nil) before the
// first recompute has run.
func (s *StatsService) GetGlobalStats() (*models.GlobalStats, error) {
	var stats models.GlobalStats
	if err := s.DB.Where("id = ?", models.GlobalStatsID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}
