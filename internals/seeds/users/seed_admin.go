package users

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	authHelper "geocourse_backend/internals/features/users/auth/helper"
	"geocourse_backend/internals/features/users/user/model"
)

// SeedAdminFromEnv provisions the admin account from ADMIN_EMAIL,
// ADMIN_USERNAME and ADMIN_PASSWORD. Admin status is never granted
// through registration; this seed is the only path to it.
func SeedAdminFromEnv(db *gorm.DB) {
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	userName := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		log.Println("ℹ️ ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed.")
		return
	}
	if userName == "" {
		userName = "admin"
	}

	var existing model.UserModel
	if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
		if !existing.UserIsAdmin {
			if err := db.Model(&existing).Update("user_is_admin", true).Error; err != nil {
				log.Printf("❌ Failed to promote existing user '%s' to admin: %v", email, err)
				return
			}
			log.Printf("✅ Existing user '%s' promoted to admin.", email)
			return
		}
		log.Printf("ℹ️ Admin '%s' already exists, skipped.", email)
		return
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := model.UserModel{
		UserName:     userName,
		UserEmail:    email,
		UserPassword: hashed,
		UserIsAdmin:  true,
		UserIsPaid:   true,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to create admin '%s': %v", email, err)
		return
	}
	log.Printf("✅ Admin '%s' created.", email)
}
