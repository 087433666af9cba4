package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "geocourse_backend/internals/features/users/auth/service"
	userDTO "geocourse_backend/internals/features/users/user/dto"
	userModel "geocourse_backend/internals/features/users/user/model"
	helpers "geocourse_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}

// Me returns the profile of the authenticated user.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "OK", userDTO.ToUserDTO(user))
}
