package handlers

import (
	"log"

	"district-champions-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupContributionRoutes(app *fiber.App, contributionService *services.ContributionService) {
	app.Get("/api/contribution", func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User ID is required",
			})
		}
		userEmail := c.Query("userEmail")

		view, err := contributionService.UserContributions(userID, userEmail)
		if err != nil {
			log.Printf("❌ Failed to fetch contributions for %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch contributions",
			})
		}

		// User-specific data gets a shorter edge cache than the leaderboard.
		c.Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=120")
		return c.JSON(view)
	})
}
