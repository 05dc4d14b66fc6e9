package handlers

import (
	"errors"
	"log"
	"strconv"

	"district-champions-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupChampionRoutes(app *fiber.App, championService *services.ChampionService) {
	app.Get("/api/champions/leaderboard", func(c *fiber.Ctx) error {
		scope := c.Query("scope", services.ScopeNational)
		scopeID := c.Query("scopeId")
		limit, _ := strconv.Atoi(c.Query("limit", "50"))

		view, err := championService.ContributorLeaderboard(scope, scopeID, limit)
		if err != nil {
			if errors.Is(err, services.ErrInvalidScope) || errors.Is(err, services.ErrMissingScopeID) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			log.Printf("❌ Failed to compute %s leaderboard: %v", scope, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch contributor leaderboard",
			})
		}

		c.Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
		return c.JSON(view)
	})

	app.Get("/api/champions/profile/:userId", func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		profile, err := championService.GetContributorProfile(userID)
		if err != nil {
			log.Printf("❌ Failed to fetch profile %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch contributor profile",
			})
		}
		if profile == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "contributor profile not found",
			})
		}
		return c.JSON(profile)
	})

	// Called by the submission flow after a contribution is verified; the
	// profile is recomputed wholesale, not patched.
	app.Post("/api/champions/profile/:userId/refresh", func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		var req struct {
			UserName  string `json:"userName"`
			UserEmail string `json:"userEmail"`
			PhotoURL  string `json:"photoURL"`
		}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid JSON",
				})
			}
		}

		profile, err := championService.UpdateContributorProfile(userID, req.UserName, req.UserEmail, req.PhotoURL)
		if err != nil {
			log.Printf("❌ Failed to refresh profile %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to refresh contributor profile",
			})
		}
		return c.JSON(profile)
	})
}
