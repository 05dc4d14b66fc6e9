package models

import "time"

// ContributorProfile is the persisted per-user aggregate document. It is
// recomputed wholesale on each update call and merge-written, so concurrent
// writers of the same profile interleave with last-write-wins semantics.
// Badge history only ever grows (see services.CalculateBadges).
type ContributorProfile struct {
	UserID    string `gorm:"primaryKey" json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail,omitempty"`
	PhotoURL  string `json:"photoURL,omitempty"`

	TotalTreesPlanted     int     `gorm:"default:0" json:"totalTreesPlanted"`
	TotalTreesDonated     int     `gorm:"default:0" json:"totalTreesDonated"`
	TotalTrees            int     `gorm:"index;default:0" json:"totalTrees"`
	TotalO2Impact         float64 `gorm:"default:0" json:"totalO2Impact"` // kg over tree lifetimes
	VerifiedContributions int     `gorm:"default:0" json:"verifiedContributions"`

	// Ranks are positions within a capped top-N window; nil means the user
	// fell outside the window, not rank zero.
	DistrictRank *int   `json:"districtRank,omitempty"`
	DistrictID   string `json:"districtId,omitempty"`
	DistrictName string `json:"districtName,omitempty"`
	StateRank    *int   `json:"stateRank,omitempty"`
	State        string `json:"state,omitempty"`

	Badges BadgeList `gorm:"type:jsonb" json:"badges"`

	FirstContributionAt *time.Time `json:"firstContributionAt,omitempty"`
	LastContributionAt  *time.Time `json:"lastContributionAt,omitempty"`
	LastUpdated         time.Time  `json:"lastUpdated"`
}
