package services

import (
	"testing"
	"time"

	"district-champions-system/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeContributionsStatusCounts(t *testing.T) {
	base := time.Now()
	contribs := []models.TreeContribution{
		verified("u1", "d", "D", "S", 3, base),
		{UserID: "u1", Status: models.ContributionPending, PlantedAt: base},
		{UserID: "u1", Status: models.ContributionPending, PlantedAt: base},
		{UserID: "u1", Status: models.ContributionRejected, PlantedAt: base},
	}

	stats := SummarizeContributions(contribs, nil)

	assert.Equal(t, 1, stats.VerifiedContributions)
	assert.Equal(t, 2, stats.PendingContributions)
	assert.Equal(t, 1, stats.RejectedContributions)
	// Only the verified record counts toward totals.
	assert.Equal(t, 3, stats.TotalTreesPlanted)
	assert.InDelta(t, FallbackLifespanO2(3), stats.TotalO2Impact, 1e-9)
}

func TestSummarizeContributionsPendingExcludedFromTotals(t *testing.T) {
	pending := models.TreeContribution{
		UserID:       "u1",
		TreeQuantity: iptr(50),
		Status:       models.ContributionPending,
		PlantedAt:    time.Now(),
	}

	stats := SummarizeContributions([]models.TreeContribution{pending}, nil)

	assert.Zero(t, stats.TotalTreesPlanted)
	assert.Zero(t, stats.TotalO2Impact)
	assert.Equal(t, 1, stats.PendingContributions)
}

func TestSummarizeContributionsDonations(t *testing.T) {
	donations := []models.Donation{
		{TreeCount: 10},
		{TreeCount: 5},
	}

	stats := SummarizeContributions(nil, donations)

	assert.Equal(t, 15, stats.TotalTreesDonated)
	assert.Equal(t, 15, stats.TotalTrees)
	assert.Zero(t, stats.TotalTreesPlanted)
}

func TestSummarizeContributionsCombinedTotal(t *testing.T) {
	base := time.Now()
	contribs := []models.TreeContribution{verified("u1", "d", "D", "S", 4, base)}
	donations := []models.Donation{{TreeCount: 6}}

	stats := SummarizeContributions(contribs, donations)

	assert.Equal(t, 4, stats.TotalTreesPlanted)
	assert.Equal(t, 6, stats.TotalTreesDonated)
	assert.Equal(t, 10, stats.TotalTrees)
}

func TestSummarizeContributionsPrecomputedO2(t *testing.T) {
	c := verified("u1", "d", "D", "S", 2, time.Now())
	c.TotalLifespanO2 = f64(9000)

	stats := SummarizeContributions([]models.TreeContribution{c}, nil)

	assert.InDelta(t, 9000, stats.TotalO2Impact, 1e-9)
}
