package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BadgeType identifies one of the six achievement tiers.
type BadgeType string

const (
	BadgeSeedling       BadgeType = "seedling"
	BadgeGreenThumb     BadgeType = "green_thumb"
	BadgeEcoWarrior     BadgeType = "eco_warrior"
	BadgeOxygenHero     BadgeType = "oxygen_hero"
	BadgeForestGuardian BadgeType = "forest_guardian"
	BadgeMasterPlanter  BadgeType = "master_planter"
)

// Badge is immutable once earned.
type Badge struct {
	ID          string    `json:"id"`
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// BadgeDefinition is a static catalog entry mapping a verified-tree threshold
// to a badge identity.
type BadgeDefinition struct {
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Requirement string    `json:"requirement"`
	Tier        string    `json:"tier"` // bronze, silver, gold, platinum
	Threshold   int       `json:"threshold"`
}

// BadgeCatalog lists the tiers in ascending threshold order. Static config,
// never mutated at runtime.
var BadgeCatalog = []BadgeDefinition{
	{
		Type:        BadgeSeedling,
		Name:        "Seedling Planter",
		Description: "Planted your first tree!",
		Icon:        "Sprout",
		Requirement: "Plant 1 tree",
		Tier:        "bronze",
		Threshold:   1,
	},
	{
		Type:        BadgeGreenThumb,
		Name:        "Green Thumb",
		Description: "A growing contribution to the environment.",
		Icon:        "TreeDeciduous",
		Requirement: "Plant 5 trees",
		Tier:        "bronze",
		Threshold:   5,
	},
	{
		Type:        BadgeEcoWarrior,
		Name:        "Eco Warrior",
		Description: "Making a significant impact on your district.",
		Icon:        "Shield",
		Requirement: "Plant 25 trees",
		Tier:        "silver",
		Threshold:   25,
	},
	{
		Type:        BadgeOxygenHero,
		Name:        "Oxygen Hero",
		Description: "Providing clean air for dozens of people.",
		Icon:        "Wind",
		Requirement: "Plant 50 trees",
		Tier:        "gold",
		Threshold:   50,
	},
	{
		Type:        BadgeForestGuardian,
		Name:        "Forest Guardian",
		Description: "Protecting and restoring entire ecosystems.",
		Icon:        "Trophy",
		Requirement: "Plant 100 trees",
		Tier:        "platinum",
		Threshold:   100,
	},
	{
		Type:        BadgeMasterPlanter,
		Name:        "Master Planter",
		Description: "Leading India towards a greener future.",
		Icon:        "Crown",
		Requirement: "Plant 250+ trees",
		Tier:        "platinum",
		Threshold:   250,
	},
}

// BadgeList persists a contributor's earned badges as a single jsonb column.
type BadgeList []Badge

func (l BadgeList) Value() (driver.Value, error) {
	if l == nil {
		l = BadgeList{}
	}
	return json.Marshal(l)
}

func (l *BadgeList) Scan(value interface{}) error {
	if value == nil {
		*l = BadgeList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported badge list column type %T", value)
}

// Has reports whether a badge of the given type was already earned.
func (l BadgeList) Has(t BadgeType) bool {
	for _, b := range l {
		if b.Type == t {
			return true
		}
	}
	return false
}
