package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "geocourse_backend/internals/features/courses/course/controller"
)

// CourseRoutes registers the public course catalogue.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctrl.GetAllCourses)
	courses.Get("/slug/:slug", ctrl.GetCourseBySlug)
	courses.Get("/:id", ctrl.GetCourseByID)
}

// CourseAdminRoutes registers the course management endpoints.
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseAdminController(db)

	courses := admin.Group("/courses")
	courses.Post("/", ctrl.CreateCourse)
	courses.Put("/:id", ctrl.UpdateCourse)
	courses.Delete("/:id", ctrl.DeleteCourse)

	courses.Post("/:id/modules", ctrl.CreateCourseModule)
	courses.Put("/modules/:moduleId", ctrl.UpdateCourseModule)
	courses.Delete("/modules/:moduleId", ctrl.DeleteCourseModule)
}
