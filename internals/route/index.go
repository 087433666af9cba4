package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certRoute "geocourse_backend/internals/features/certificates/route"
	courseRoute "geocourse_backend/internals/features/courses/course/route"
	enrollmentRoute "geocourse_backend/internals/features/courses/enrollments/route"
	progressRoute "geocourse_backend/internals/features/progress/route"
	quizRoute "geocourse_backend/internals/features/quizzes/route"
	authRoute "geocourse_backend/internals/features/users/auth/route"
	userRoute "geocourse_backend/internals/features/users/user/route"
	"geocourse_backend/internals/middlewares"
	authMiddleware "geocourse_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under three surfaces:
//
//	/api    public (catalogue, auth, webhook, verification)
//	/api/u  authenticated users
//	/api/a  admins
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// ===== Public =====
	authRoute.AuthRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	certRoute.CertificateVerifyRoutes(api, db)
	enrollmentRoute.PaymentWebhookRoutes(api, db)

	// ===== Authenticated =====
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	authRoute.AuthProtectedRoutes(user, db)
	enrollmentRoute.EnrollmentRoutes(user, db)
	progressRoute.ProgressRoutes(user, db)
	quizRoute.QuizRoutes(user, db)
	certRoute.CertificateRoutes(user, db)

	// ===== Admin =====
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(db))
	userRoute.UserAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	quizRoute.QuizAdminRoutes(admin, db)
	certRoute.CertificateAdminRoutes(admin, db)
}
