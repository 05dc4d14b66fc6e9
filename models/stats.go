package models

import "time"

// GlobalStatsID is the fixed primary key of the singleton snapshot row.
const GlobalStatsID = "global"

// GlobalStats is the precomputed global summary, overwritten wholesale by
// the periodic snapshot job so reads stay cheap.
type GlobalStats struct {
	ID             string    `gorm:"primaryKey" json:"-"`
	TotalDistricts int64     `json:"totalDistricts"`
	TotalTrees     int64     `json:"totalTrees"`
	TotalOxygen    float64   `json:"totalOxygen"` // kg/year
	LastUpdated    time.Time `json:"lastUpdated"`
}

func (GlobalStats) TableName() string {
	return "aggregated_stats"
}
