package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"geocourse_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts user management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Patch("/:id/flags", ctrl.UpdateUserFlags)
	users.Patch("/:id/active", ctrl.SetUserActive)
}
