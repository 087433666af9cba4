package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"geocourse_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain for the whole app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
