package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "geocourse_backend/internals/features/users/auth/controller"
	"geocourse_backend/internals/middlewares"
)

// AuthRoutes registers the public auth endpoints (no token required).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthProtectedRoutes registers auth endpoints that require a valid token.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/me", ctrl.Me)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", ctrl.ChangePassword)
}
