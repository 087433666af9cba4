package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "geocourse_backend/internals/features/users/auth/model"
	userModel "geocourse_backend/internals/features/users/user/model"
)

/* ==========================
   Users
========================== */

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByIdentifier matches either username or email.
func FindUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.
		Where("user_name = ? OR user_email = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_google_id = ?", googleID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hash string) error {
	return db.Model(&userModel.UserModel{}).
		Where("user_id = ?", id).
		Update("user_password", hash).Error
}

/* ==========================
   Token blacklist
========================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(ttl),
	}
	// idempotent: re-blacklisting the same token is a no-op
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(&entry).Error
}

/* ==========================
   Refresh tokens
========================== */

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

func FindActiveRefreshToken(db *gorm.DB, userID uuid.UUID, hash []byte, now time.Time) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.
		Where("user_id = ? AND token_hash = ? AND revoked_at IS NULL AND expires_at > ?", userID, hash, now).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, id uuid.UUID, now time.Time) error {
	return db.Model(&authModel.RefreshToken{}).
		Where("id = ?", id).
		Update("revoked_at", now).Error
}

func RevokeRefreshTokenByHash(db *gorm.DB, hash []byte, now time.Time) error {
	return db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}
