package handlers

import (
	"log"
	"strconv"

	"district-champions-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Get("/api/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "35"))

		metrics, err := leaderboardService.StateLeaderboard(limit)
		if err != nil {
			log.Printf("❌ Failed to compute state leaderboard: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch leaderboard",
			})
		}

		// Derived wholesale on each call; give the edge five minutes.
		c.Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
		return c.JSON(metrics)
	})
}
