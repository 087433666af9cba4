package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"geocourse_backend/internals/features/users/user/dto"
	"geocourse_backend/internals/features/users/user/model"
	helper "geocourse_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// =============================
// 📄 List Users (paginated)
// =============================
func (ctrl *UserAdminController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var users []model.UserModel
	if err := ctrl.DB.
		Order("user_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, dto.ToUserDTO(u))
	}

	return helper.JsonList(c, "Users fetched", dtos,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Get User by ID
// =============================
func (ctrl *UserAdminController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "User fetched", dto.ToUserDTO(user))
}

// =============================
// ✏️ Update admin/payment flags
// =============================
func (ctrl *UserAdminController) UpdateUserFlags(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var body dto.UpdateUserFlagsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.IsAdmin == nil && body.IsPaid == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	updates := map[string]interface{}{}
	if body.IsAdmin != nil {
		updates["user_is_admin"] = *body.IsAdmin
	}
	if body.IsPaid != nil {
		updates["user_is_paid"] = *body.IsPaid
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("user_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonUpdated(c, "User flags updated", dto.ToUserDTO(user))
}

// =============================
// 🚫 Deactivate / reactivate
// =============================
func (ctrl *UserAdminController) SetUserActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var body struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil || body.IsActive == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "is_active is required")
	}

	// An admin cannot deactivate their own account.
	selfID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	if selfID == id && !*body.IsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("user_id = ?", id).Update("user_is_active", *body.IsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "User status updated", fiber.Map{"id": id, "is_active": *body.IsActive})
}
