package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startTime = time.Now()

// BaseRoutes registers the root and health endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "geocourse-backend",
			"status":  "running",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})
}
