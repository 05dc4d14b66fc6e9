package services

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"district-champions-system/models"

	"gorm.io/gorm"
)

// userFetchCap bounds per-user reads on the contribution view to keep read
// cost predictable.
const userFetchCap = 100

type ContributionService struct {
	DB *gorm.DB
}

func NewContributionService(db *gorm.DB) *ContributionService {
	return &ContributionService{DB: db}
}

// ContributionStats summarizes a user's planting and donation activity.
// Only VERIFIED contributions count toward public totals.
type ContributionStats struct {
	TotalTreesPlanted     int     `json:"totalTreesPlanted"`
	TotalTreesDonated     int     `json:"totalTreesDonated"`
	TotalTrees            int     `json:"totalTrees"`
	TotalO2Impact         float64 `json:"totalO2Impact"`
	VerifiedContributions int     `json:"verifiedContributions"`
	PendingContributions  int     `json:"pendingContributions"`
	RejectedContributions int     `json:"rejectedContributions"`
}

// SummarizeContributions computes the stats block for the contribution view.
func SummarizeContributions(contribs []models.TreeContribution, donations []models.Donation) ContributionStats {
	var stats ContributionStats
	for i := range contribs {
		c := &contribs[i]
		switch c.Status {
		case models.ContributionVerified:
			stats.VerifiedContributions++
			qty := c.Quantity()
			stats.TotalTreesPlanted += qty
			if c.TotalLifespanO2 != nil && *c.TotalLifespanO2 > 0 {
				stats.TotalO2Impact += *c.TotalLifespanO2
			} else {
				stats.TotalO2Impact += FallbackLifespanO2(qty)
			}
		case models.ContributionPending:
			stats.PendingContributions++
		case models.ContributionRejected:
			stats.RejectedContributions++
		}
	}
	for _, d := range donations {
		stats.TotalTreesDonated += d.TreeCount
	}
	stats.TotalTrees = stats.TotalTreesPlanted + stats.TotalTreesDonated
	return stats
}

// UserContributionView is the contribution endpoint's response body.
type UserContributionView struct {
	Contributions []models.TreeContribution `json:"contributions"`
	Donations     []models.Donation         `json:"donations"`
	Stats         ContributionStats         `json:"stats"`
}

// UserContributions assembles a user's contribution history, donations and
// stats. The donation fetch and the district-name resolution are independent
// sub-reads and run concurrently; a failed name resolution degrades to a
// placeholder and never aborts the view.
func (s *ContributionService) UserContributions(userID, userEmail string) (*UserContributionView, error) {
	var contribs []models.TreeContribution
	if err := s.DB.
		Where("user_id = ?", userID).
		Limit(userFetchCap).
		Find(&contribs).Error; err != nil {
		return nil, fmt.Errorf("fetching contributions for %s: %w", userID, err)
	}
	sort.SliceStable(contribs, func(i, j int) bool {
		return contribs[i].PlantedAt.After(contribs[j].PlantedAt)
	})

	var (
		wg          sync.WaitGroup
		donations   []models.Donation
		donationErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if userEmail == "" {
			// No email, no donation identity to match on.
			donations = []models.Donation{}
			return
		}
		var fetched []models.Donation
		if err := s.DB.
			Where("donor_email = ?", userEmail).
			Limit(userFetchCap).
			Find(&fetched).Error; err != nil {
			donationErr = fmt.Errorf("fetching donations for %s: %w", userEmail, err)
			return
		}
		sort.SliceStable(fetched, func(i, j int) bool {
			return fetched[i].DonatedAt.After(fetched[j].DonatedAt)
		})
		donations = fetched
	}()
	go func() {
		defer wg.Done()
		s.resolveDistrictNames(contribs)
	}()
	wg.Wait()
	if donationErr != nil {
		return nil, donationErr
	}

	if contribs == nil {
		contribs = []models.TreeContribution{}
	}
	return &UserContributionView{
		Contributions: contribs,
		Donations:     donations,
		Stats:         SummarizeContributions(contribs, donations),
	}, nil
}

// resolveDistrictNames back-fills display names for contributions via one
// batch district lookup. On failure every unresolved name falls back to
// "Unknown"; the primary computation continues regardless.
func (s *ContributionService) resolveDistrictNames(contribs []models.TreeContribution) {
	seen := make(map[string]bool)
	var ids []string
	for i := range contribs {
		id := contribs[i].DistrictID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return
	}

	names := make(map[string]string, len(ids))
	var districts []models.District
	if err := s.DB.Where("id IN ?", ids).Find(&districts).Error; err != nil {
		log.Printf("⚠️ Failed to batch fetch districts: %v", err)
	} else {
		for _, d := range districts {
			names[d.ID] = d.Name
		}
	}

	for i := range contribs {
		if contribs[i].DistrictID == "" {
			continue
		}
		if name, ok := names[contribs[i].DistrictID]; ok && name != "" {
			contribs[i].DistrictName = name
		} else if contribs[i].DistrictName == "" {
			contribs[i].DistrictName = "Unknown"
		}
	}
}
