package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "geocourse_backend/internals/helpers"
)

// IsAdmin guards the admin group. The claim is checked first; the database is
// consulted as the source of truth so a revoked admin loses access before the
// token expires.
func IsAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserUUID(c)
		if err != nil {
			return err
		}

		if !helper.IsAdminFromLocals(c) {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}

		var isAdmin bool
		if err := db.Table("users").
			Select("user_is_admin").
			Where("user_id = ?", userID).
			Take(&isAdmin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}
