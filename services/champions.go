package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"district-champions-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Read caps keep the cost of a wholesale recompute predictable. The store
// charges per document read, so every scan is bounded.
const (
	contributionBatchCap = 500
	donationBatchCap     = 500
	scopedScanCap        = 2000
	rankWindow           = 100

	defaultScopedLimit = 50
	maxScopedLimit     = 100
)

// Leaderboard scopes.
const (
	ScopeDistrict = "district"
	ScopeState    = "state"
	ScopeNational = "national"
)

var (
	ErrInvalidScope   = errors.New("unknown leaderboard scope")
	ErrMissingScopeID = errors.New("scope id is required for this scope")
)

type ChampionService struct {
	DB *gorm.DB
}

func NewChampionService(db *gorm.DB) *ChampionService {
	return &ChampionService{DB: db}
}

// ContributorTotals accumulates one user's verified planting activity.
type ContributorTotals struct {
	TreesPlanted          int
	O2Impact              float64
	VerifiedContributions int
	FirstContributionAt   *time.Time
	LastContributionAt    *time.Time

	PrimaryDistrictID   string
	PrimaryDistrictName string
	PrimaryState        string
}

// AggregateContributions folds a batch of verified contributions into
// per-user totals. The primary district is the one with the highest
// contributed quantity; on a tie the first district to reach the maximum
// keeps it.
func AggregateContributions(contribs []models.TreeContribution) ContributorTotals {
	var totals ContributorTotals

	type districtCount struct {
		name     string
		state    string
		quantity int
	}
	counts := make(map[string]*districtCount)
	var order []string

	for i := range contribs {
		c := &contribs[i]
		qty := c.Quantity()

		totals.TreesPlanted += qty
		totals.VerifiedContributions++
		if c.TotalLifespanO2 != nil && *c.TotalLifespanO2 > 0 {
			totals.O2Impact += *c.TotalLifespanO2
		} else {
			totals.O2Impact += FallbackLifespanO2(qty)
		}

		planted := c.PlantedAt
		if totals.FirstContributionAt == nil || planted.Before(*totals.FirstContributionAt) {
			first := planted
			totals.FirstContributionAt = &first
		}
		if totals.LastContributionAt == nil || planted.After(*totals.LastContributionAt) {
			last := planted
			totals.LastContributionAt = &last
		}

		if c.DistrictID == "" {
			continue
		}
		dc := counts[c.DistrictID]
		if dc == nil {
			dc = &districtCount{name: orUnknown(c.DistrictName), state: orUnknown(c.State)}
			counts[c.DistrictID] = dc
			order = append(order, c.DistrictID)
		}
		dc.quantity += qty
	}

	max := 0
	for _, id := range order {
		if counts[id].quantity > max {
			max = counts[id].quantity
			totals.PrimaryDistrictID = id
			totals.PrimaryDistrictName = counts[id].name
			totals.PrimaryState = counts[id].state
		}
	}
	return totals
}

// ContributorStanding is one ranked row of a scoped contributor leaderboard.
type ContributorStanding struct {
	Rank                  int              `json:"rank"`
	UserID                string           `json:"userId"`
	UserName              string           `json:"userName"`
	PhotoURL              string           `json:"photoURL,omitempty"`
	TotalTrees            int              `json:"totalTrees"`
	TotalO2Impact         float64          `json:"totalO2Impact"`
	VerifiedContributions int              `json:"verifiedContributions"`
	Badges                models.BadgeList `json:"badges"`
	DistrictName          string           `json:"districtName,omitempty"`
	State                 string           `json:"state,omitempty"`
}

// RankContributorsByTrees folds verified contributions into per-user totals
// and ranks them by total trees descending, user id ascending on ties.
func RankContributorsByTrees(contribs []models.TreeContribution, limit int) []ContributorStanding {
	type accum struct {
		userName     string
		districtName string
		state        string
		trees        int
		o2           float64
		verified     int
	}
	byUser := make(map[string]*accum)
	var order []string

	for i := range contribs {
		c := &contribs[i]
		if c.UserID == "" {
			continue
		}
		a := byUser[c.UserID]
		if a == nil {
			a = &accum{
				userName:     orAnonymous(c.UserName),
				districtName: orUnknown(c.DistrictName),
				state:        orUnknown(c.State),
			}
			byUser[c.UserID] = a
			order = append(order, c.UserID)
		}
		qty := c.Quantity()
		a.trees += qty
		a.verified++
		if c.TotalLifespanO2 != nil && *c.TotalLifespanO2 > 0 {
			a.o2 += *c.TotalLifespanO2
		} else {
			a.o2 += FallbackLifespanO2(qty)
		}
	}

	standings := make([]ContributorStanding, 0, len(byUser))
	for _, id := range order {
		a := byUser[id]
		standings = append(standings, ContributorStanding{
			UserID:                id,
			UserName:              a.userName,
			TotalTrees:            a.trees,
			TotalO2Impact:         a.o2,
			VerifiedContributions: a.verified,
			Badges:                models.BadgeList{},
			DistrictName:          a.districtName,
			State:                 a.state,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalTrees != standings[j].TotalTrees {
			return standings[i].TotalTrees > standings[j].TotalTrees
		}
		return standings[i].UserID < standings[j].UserID
	})
	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// RankWithin locates a user's 1-based position in a ranked window by linear
// scan. Returns nil when the user falls outside the window — ranks beyond
// the cap are deliberately not computed.
func RankWithin(standings []ContributorStanding, userID string) *int {
	for i := range standings {
		if standings[i].UserID == userID {
			rank := i + 1
			return &rank
		}
	}
	return nil
}

// GetContributorProfile reads the persisted profile. Returns (nil, nil) when
// the user has none yet.
func (s *ChampionService) GetContributorProfile(userID string) (*models.ContributorProfile, error) {
	var profile models.ContributorProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateContributorProfile recomputes a user's profile wholesale from
// verified contributions and donations, then merge-writes it. Existing badge
// history is read first so already-earned badges survive the recompute.
// Concurrent updates of the same profile interleave last-write-wins; that is
// acceptable because every call re-derives from source data.
func (s *ChampionService) UpdateContributorProfile(userID, userName, userEmail, photoURL string) (*models.ContributorProfile, error) {
	var contribs []models.TreeContribution
	if err := s.DB.
		Where("user_id = ? AND status = ?", userID, models.ContributionVerified).
		Limit(contributionBatchCap).
		Find(&contribs).Error; err != nil {
		return nil, fmt.Errorf("fetching contributions for %s: %w", userID, err)
	}
	totals := AggregateContributions(contribs)

	donationQuery := s.DB.Where("user_id = ?", userID)
	if userEmail != "" {
		donationQuery = s.DB.Where("user_id = ? OR donor_email = ?", userID, userEmail)
	}
	var donations []models.Donation
	if err := donationQuery.Limit(donationBatchCap).Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("fetching donations for %s: %w", userID, err)
	}
	donated := 0
	for _, d := range donations {
		donated += d.TreeCount
	}

	existing, err := s.GetContributorProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching existing profile for %s: %w", userID, err)
	}
	var existingBadges models.BadgeList
	if existing != nil {
		existingBadges = existing.Badges
	}

	// District/state ranks come from recomputing the capped top-N window and
	// scanning for the user. A failed window recompute degrades to no rank
	// rather than failing the whole update.
	var districtRank, stateRank *int
	if totals.PrimaryDistrictID != "" {
		if window, err := s.TopContributorsForDistrict(totals.PrimaryDistrictID, rankWindow); err != nil {
			log.Printf("⚠️ Failed to compute district rank window for %s: %v", userID, err)
		} else {
			districtRank = RankWithin(window, userID)
		}
		if totals.PrimaryState != "" && totals.PrimaryState != "Unknown" {
			if window, err := s.TopContributorsForState(totals.PrimaryState, rankWindow); err != nil {
				log.Printf("⚠️ Failed to compute state rank window for %s: %v", userID, err)
			} else {
				stateRank = RankWithin(window, userID)
			}
		}
	}

	profile := &models.ContributorProfile{
		UserID:                userID,
		UserName:              userName,
		UserEmail:             userEmail,
		PhotoURL:              photoURL,
		TotalTreesPlanted:     totals.TreesPlanted,
		TotalTreesDonated:     donated,
		TotalTrees:            totals.TreesPlanted + donated,
		TotalO2Impact:         totals.O2Impact,
		VerifiedContributions: totals.VerifiedContributions,
		DistrictRank:          districtRank,
		DistrictID:            totals.PrimaryDistrictID,
		DistrictName:          totals.PrimaryDistrictName,
		StateRank:             stateRank,
		State:                 totals.PrimaryState,
		Badges:                CalculateBadges(totals.TreesPlanted, existingBadges),
		FirstContributionAt:   totals.FirstContributionAt,
		LastContributionAt:    totals.LastContributionAt,
		LastUpdated:           time.Now(),
	}

	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error; err != nil {
		return nil, fmt.Errorf("persisting profile for %s: %w", userID, err)
	}
	return profile, nil
}

// TopContributorsForDistrict recomputes the district leaderboard fresh from
// raw verified contributions.
func (s *ChampionService) TopContributorsForDistrict(districtID string, limit int) ([]ContributorStanding, error) {
	var contribs []models.TreeContribution
	if err := s.DB.
		Where("district_id = ? AND status = ?", districtID, models.ContributionVerified).
		Limit(scopedScanCap).
		Find(&contribs).Error; err != nil {
		return nil, fmt.Errorf("fetching district contributions: %w", err)
	}
	standings := RankContributorsByTrees(contribs, limit)
	s.attachBadges(standings)
	return standings, nil
}

// TopContributorsForState recomputes the state leaderboard fresh from raw
// verified contributions. The state name is matched case-insensitively so
// the stored canonical form resolves regardless of how the caller spells or
// cases the identifier.
func (s *ChampionService) TopContributorsForState(state string, limit int) ([]ContributorStanding, error) {
	var contribs []models.TreeContribution
	if err := s.DB.
		Where("LOWER(state) = LOWER(?) AND status = ?", state, models.ContributionVerified).
		Limit(scopedScanCap).
		Find(&contribs).Error; err != nil {
		return nil, fmt.Errorf("fetching state contributions: %w", err)
	}
	standings := RankContributorsByTrees(contribs, limit)
	s.attachBadges(standings)
	return standings, nil
}

// NationalLeaderboard trusts previously persisted profiles instead of
// recomputing from raw contributions, trading freshness for read cost.
func (s *ChampionService) NationalLeaderboard(limit int) ([]ContributorStanding, error) {
	var profiles []models.ContributorProfile
	if err := s.DB.
		Order("total_trees DESC").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("fetching contributor profiles: %w", err)
	}

	standings := make([]ContributorStanding, len(profiles))
	for i, p := range profiles {
		badges := p.Badges
		if badges == nil {
			badges = models.BadgeList{}
		}
		standings[i] = ContributorStanding{
			Rank:                  i + 1,
			UserID:                p.UserID,
			UserName:              orAnonymous(p.UserName),
			PhotoURL:              p.PhotoURL,
			TotalTrees:            p.TotalTrees,
			TotalO2Impact:         p.TotalO2Impact,
			VerifiedContributions: p.VerifiedContributions,
			Badges:                badges,
			DistrictName:          p.DistrictName,
			State:                 p.State,
		}
	}
	return standings, nil
}

// attachBadges enriches standings with badge and photo data from each
// contributor's persisted profile. Lookups fan out concurrently and each
// failure is isolated: a standing just keeps its empty badge set.
func (s *ChampionService) attachBadges(standings []ContributorStanding) {
	var wg sync.WaitGroup
	for i := range standings {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			profile, err := s.GetContributorProfile(standings[i].UserID)
			if err != nil {
				log.Printf("⚠️ Failed to load profile for %s: %v", standings[i].UserID, err)
				return
			}
			if profile == nil {
				return
			}
			if profile.Badges != nil {
				standings[i].Badges = profile.Badges
			}
			if standings[i].PhotoURL == "" {
				standings[i].PhotoURL = profile.PhotoURL
			}
		}(i)
	}
	wg.Wait()
}

// ContributorLeaderboardView is the response envelope for scoped contributor
// leaderboards.
type ContributorLeaderboardView struct {
	Scope             string                `json:"scope"`
	ScopeID           string                `json:"scopeId,omitempty"`
	ScopeName         string                `json:"scopeName,omitempty"`
	Entries           []ContributorStanding `json:"entries"`
	TotalContributors int                   `json:"totalContributors"`
	LastUpdated       time.Time             `json:"lastUpdated"`
}

// ContributorLeaderboard serves one of the three scopes. District and state
// scopes are computed fresh per call; national reads persisted aggregates.
func (s *ChampionService) ContributorLeaderboard(scope, scopeID string, limit int) (*ContributorLeaderboardView, error) {
	if limit <= 0 {
		limit = defaultScopedLimit
	}
	if limit > maxScopedLimit {
		limit = maxScopedLimit
	}

	view := &ContributorLeaderboardView{
		Scope:       scope,
		ScopeID:     scopeID,
		LastUpdated: time.Now(),
	}

	switch scope {
	case ScopeDistrict:
		if scopeID == "" {
			return nil, ErrMissingScopeID
		}
		entries, err := s.TopContributorsForDistrict(scopeID, limit)
		if err != nil {
			return nil, err
		}
		view.Entries = entries
		view.ScopeName = s.districtDisplayName(scopeID)
	case ScopeState:
		if scopeID == "" {
			return nil, ErrMissingScopeID
		}
		state := models.DisplayName(scopeID)
		entries, err := s.TopContributorsForState(state, limit)
		if err != nil {
			return nil, err
		}
		view.Entries = entries
		view.ScopeName = state
		// Prefer the spelling stored on the matched rows over the
		// normalized identifier.
		if len(entries) > 0 && entries[0].State != "" && entries[0].State != "Unknown" {
			view.ScopeName = entries[0].State
		}
	case ScopeNational:
		entries, err := s.NationalLeaderboard(limit)
		if err != nil {
			return nil, err
		}
		view.Entries = entries
		view.ScopeName = "India"
	default:
		return nil, ErrInvalidScope
	}

	view.TotalContributors = len(view.Entries)
	return view, nil
}

// districtDisplayName resolves a district's display name, falling back to a
// placeholder when the lookup fails — a missing name never fails the
// leaderboard itself.
func (s *ChampionService) districtDisplayName(districtID string) string {
	var district models.District
	if err := s.DB.Where("id = ?", districtID).First(&district).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Failed to resolve district name for %s: %v", districtID, err)
		}
		return "Unknown"
	}
	return models.DisplayName(district.Name)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orAnonymous(s string) string {
	if s == "" {
		return "Anonymous"
	}
	return s
}
