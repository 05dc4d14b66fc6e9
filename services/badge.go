package services

import (
	"time"

	"district-champions-system/models"

	"github.com/google/uuid"
)

// CalculateBadges derives the badge set for a cumulative verified tree count.
// Already-earned badges are carried over untouched and never duplicated; the
// set only grows, even when a recompute sees fewer verified trees after a
// retroactive rejection. Earned recognition is permanent.
func CalculateBadges(verifiedTrees int, existing models.BadgeList) models.BadgeList {
	badges := make(models.BadgeList, len(existing))
	copy(badges, existing)

	now := time.Now()
	for _, def := range models.BadgeCatalog {
		if verifiedTrees < def.Threshold || badges.Has(def.Type) {
			continue
		}
		badges = append(badges, models.Badge{
			ID:          "badge_" + string(def.Type) + "_" + uuid.NewString(),
			Type:        def.Type,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			EarnedAt:    now,
		})
	}
	return badges
}
