package handlers

import (
	"district-champions-system/models"

	"github.com/gofiber/fiber/v2"
)

// Partner data is static configuration; these routes never touch the store.
func SetupPartnerRoutes(app *fiber.App) {
	app.Get("/api/partners", func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "public, max-age=3600")
		return c.JSON(models.AllPartners())
	})

	app.Get("/api/partners/:id", func(c *fiber.Ctx) error {
		partner, ok := models.PartnerByID(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "partner not found",
			})
		}
		c.Set("Cache-Control", "public, max-age=3600")
		return c.JSON(partner)
	})
}
