package models

import "time"

// Contribution lifecycle states. Transitions happen in the external
// submission/review flow; this service only reads VERIFIED records for
// public totals.
const (
	ContributionPending  = "PENDING"
	ContributionVerified = "VERIFIED"
	ContributionRejected = "REJECTED"
)

// TreeContribution is a user-submitted planting record.
type TreeContribution struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID       string `gorm:"index;not null" json:"userId"`
	UserName     string `json:"userName,omitempty"`
	DistrictID   string `gorm:"index" json:"districtId"`
	DistrictName string `json:"districtName,omitempty"`
	State        string `gorm:"index" json:"state,omitempty"`

	TreeQuantity *int   `json:"treeQuantity,omitempty"` // nil means 1
	Status       string `gorm:"index;not null;default:'PENDING'" json:"status"`

	// TotalLifespanO2 is precomputed by the submission flow when district
	// data was available at submit time; absent otherwise.
	TotalLifespanO2 *float64 `json:"totalLifespanO2,omitempty"`

	PlantedAt  time.Time  `json:"plantedAt"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Quantity returns the planted tree count with the single-tree default
// applied.
func (c *TreeContribution) Quantity() int {
	if c.TreeQuantity == nil || *c.TreeQuantity <= 0 {
		return 1
	}
	return *c.TreeQuantity
}

// Donation records trees funded through a partner rather than planted by
// hand. Donors may or may not have an account, so identity is userId or
// email.
type Donation struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"index" json:"userId,omitempty"`
	DonorEmail string    `gorm:"index" json:"donorEmail,omitempty"`
	DonorName  string    `json:"donorName,omitempty"`
	PartnerID  string    `json:"partnerId,omitempty"`
	TreeCount  int       `gorm:"not null;default:0" json:"treeCount"`
	DonatedAt  time.Time `json:"donatedAt"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
