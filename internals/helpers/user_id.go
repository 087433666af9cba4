package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID returns the authenticated user's id from Locals("user_id"),
// which the auth middleware sets after verifying the token.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID format")
	}
	return id, nil
}

// IsAdminFromLocals reports whether the auth middleware marked this request admin.
func IsAdminFromLocals(c *fiber.Ctx) bool {
	v, ok := c.Locals("is_admin").(bool)
	return ok && v
}
