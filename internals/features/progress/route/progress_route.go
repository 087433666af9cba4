package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "geocourse_backend/internals/features/progress/controller"
)

// ProgressRoutes registers the authenticated learning-progress endpoints.
func ProgressRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	user.Get("/courses/:id/progress", ctrl.GetCourseOutline)
	user.Get("/modules/:id", ctrl.GetModuleContent)
	user.Post("/modules/:id/complete", ctrl.CompleteModule)
}
