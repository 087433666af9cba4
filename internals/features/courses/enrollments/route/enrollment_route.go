package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "geocourse_backend/internals/features/courses/enrollments/controller"
)

// PaymentWebhookRoutes registers the gateway notification endpoint.
// It is public: Midtrans calls it server-to-server.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)
	api.Post("/payments/notification", ctrl.HandleMidtransNotification)
}

// EnrollmentRoutes registers the authenticated enrollment endpoints.
func EnrollmentRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	enrollments := user.Group("/enrollments")
	enrollments.Post("/", ctrl.Enroll)
	enrollments.Get("/", ctrl.GetMyEnrollments)
}

// EnrollmentAdminRoutes registers enrollment management for admins.
func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentAdminController(db)

	enrollments := admin.Group("/enrollments")
	enrollments.Get("/", ctrl.GetAllEnrollments)
	enrollments.Post("/:id/activate", ctrl.ActivateEnrollment)

	admin.Get("/payment-events", ctrl.GetGatewayEvents)
}
