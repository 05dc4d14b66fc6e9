package handlers

import (
	"log"

	"district-champions-system/middleware"
	"district-champions-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App, statsService *services.StatsService) {
	app.Get("/api/stats", func(c *fiber.Ctx) error {
		stats, err := statsService.GetGlobalStats()
		if err != nil {
			log.Printf("❌ Failed to read global stats: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch stats",
			})
		}
		if stats == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "stats not computed yet",
			})
		}
		c.Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
		return c.JSON(stats)
	})

	// The only gated operation in this service: the trigger must prove it is
	// the scheduler (or an operator) before any recompute work starts.
	app.Get("/api/cron/update-stats", middleware.CronAuthMiddleware(), func(c *fiber.Ctx) error {
		log.Println("Running aggregated stats update...")

		stats, err := statsService.RecomputeGlobalStats()
		if err != nil {
			log.Printf("❌ Failed to update aggregated stats: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update stats",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"stats":   stats,
		})
	})
}
