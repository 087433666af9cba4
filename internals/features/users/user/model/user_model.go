package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:80;unique;not null" json:"user_name" validate:"required,min=3,max=80"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserGoogleID *string   `gorm:"column:user_google_id;size:255;unique" json:"user_google_id,omitempty"`

	UserIsAdmin  bool `gorm:"column:user_is_admin;not null;default:false" json:"user_is_admin"`
	UserIsPaid   bool `gorm:"column:user_is_paid;not null;default:false" json:"user_is_paid"`
	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// Validate checks the struct against its validation tags.
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " is required.\n"
			case "email":
				msg += "Invalid email format.\n"
			case "min":
				msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters.\n"
			case "max":
				msg += fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters.\n"
			default:
				msg += fieldErr.Field() + " has an invalid format.\n"
			}
		}
		return errors.New(msg)
	}
	return err
}
