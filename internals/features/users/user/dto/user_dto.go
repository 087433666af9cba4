package dto

import (
	"time"

	"geocourse_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsPaid    bool      `json:"is_paid"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Update Request DTOs
// ============================
type UpdateUserFlagsRequest struct {
	IsAdmin *bool `json:"is_admin"`
	IsPaid  *bool `json:"is_paid"`
}

// ============================
// Converter
// ============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.UserID,
		UserName:  m.UserName,
		Email:     m.UserEmail,
		IsAdmin:   m.UserIsAdmin,
		IsPaid:    m.UserIsPaid,
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt,
	}
}
