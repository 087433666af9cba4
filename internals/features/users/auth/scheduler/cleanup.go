package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authModel "geocourse_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler purges expired blacklist entries and
// stale refresh tokens on a fixed interval.
func StartTokenCleanupScheduler(db *gorm.DB) {
	interval := 1 * time.Hour
	if v := os.Getenv("TOKEN_CLEANUP_INTERVAL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = time.Duration(n) * time.Minute
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now().UTC()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] Token blacklist cleanup failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] Token blacklist cleanup removed %d entries", res.RowsAffected)
			}

			res = db.
				Where("expires_at < ? OR revoked_at IS NOT NULL", now.Add(-24*time.Hour)).
				Delete(&authModel.RefreshToken{})
			if res.Error != nil {
				log.Printf("[ERROR] Refresh token cleanup failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] Refresh token cleanup removed %d entries", res.RowsAffected)
			}
		}
	}()
}
