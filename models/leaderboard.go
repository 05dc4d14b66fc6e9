package models

import "time"

// StateLeaderboardEntry is the stored per-state record. Tree totals are
// maintained by the ingestion/verification flow; Rank and OxygenOffset are
// best-effort annotations overwritten opportunistically by the ranking
// engine.
type StateLeaderboardEntry struct {
	ID    string `gorm:"primaryKey" json:"id"` // state slug
	State string `gorm:"uniqueIndex;not null" json:"state"`

	TotalTrees          int64   `gorm:"default:0" json:"totalTrees"`
	TotalTreesPlanted   int64   `gorm:"default:0" json:"totalTreesPlanted"`
	TotalTreesDonated   int64   `gorm:"default:0" json:"totalTreesDonated"`
	ExistingForestTrees int64   `gorm:"default:0" json:"existingForestTrees"`
	ForestCoverKm2      float64 `gorm:"default:0" json:"forestCoverKm2"`

	TotalO2Supply float64 `gorm:"default:0" json:"totalO2Supply"`
	OxygenOffset  float64 `gorm:"default:0" json:"oxygenOffset"`
	Rank          *int    `json:"rank,omitempty"`

	LastUpdated time.Time `json:"lastUpdated"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// StateMetric is derived wholesale on every leaderboard read and never
// persisted as source of truth.
type StateMetric struct {
	ID                  string  `json:"id"`
	State               string  `json:"state"`
	Population          int64   `json:"population"`
	TotalTreesPlanted   int64   `json:"totalTreesPlanted"`
	TotalTreesDonated   int64   `json:"totalTreesDonated"`
	ExistingForestTrees int64   `json:"existingForestTrees"`
	TotalTrees          int64   `json:"totalTrees"`
	O2Needed            int64   `json:"o2Needed"`         // kg/year
	O2Supply            int64   `json:"o2Supply"`         // kg/year
	ExistingForestO2    int64   `json:"existingForestO2"` // kg/year
	PercentageMet       float64 `json:"percentageMet"`    // [0,100], 2dp
	AvgAQI              int     `json:"avgAQI"`
	AvgSoilQuality      int     `json:"avgSoilQuality"`
	Rank                int     `json:"rank"`
}
