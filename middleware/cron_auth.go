package middleware

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CronAuthMiddleware gates the scheduled-recompute endpoint. A request is
// accepted when it carries the scheduler's trusted header (the gateway
// strips it from public traffic), a bearer token matching CRON_SECRET, or a
// matching ?secret= query parameter for manual runs. Everything else is
// rejected before any work happens.
func CronAuthMiddleware() fiber.Handler {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		log.Fatal("❌ CRON_SECRET is not set — cron endpoint cannot authenticate its trigger")
	}

	return func(c *fiber.Ctx) error {
		if c.Get("X-Scheduler-Cron") == "1" {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader != "" && token == secret {
			return c.Next()
		}

		if c.Query("secret") == secret {
			return c.Next()
		}

		log.Printf("🚫 [CRON_AUTH] Unauthorized cron trigger for %s", c.Path())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
