package model

import (
	"time"

	"github.com/google/uuid"
)

// ModuleProgressModel records one user's completion of one module.
// The (user, module) pair is unique; completion is idempotent.
type ModuleProgressModel struct {
	ModuleProgressID uuid.UUID `gorm:"column:module_progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"module_progress_id"`

	ModuleProgressUserID   uuid.UUID `gorm:"column:module_progress_user_id;type:uuid;not null;uniqueIndex:uq_module_progress_user_module,priority:1" json:"module_progress_user_id"`
	ModuleProgressModuleID uuid.UUID `gorm:"column:module_progress_module_id;type:uuid;not null;uniqueIndex:uq_module_progress_user_module,priority:2" json:"module_progress_module_id"`

	ModuleProgressCompleted   bool       `gorm:"column:module_progress_completed;not null;default:false" json:"module_progress_completed"`
	ModuleProgressCompletedAt *time.Time `gorm:"column:module_progress_completed_at" json:"module_progress_completed_at,omitempty"`

	ModuleProgressCreatedAt time.Time `gorm:"column:module_progress_created_at;autoCreateTime" json:"module_progress_created_at"`
	ModuleProgressUpdatedAt time.Time `gorm:"column:module_progress_updated_at;autoUpdateTime" json:"module_progress_updated_at"`
}

func (ModuleProgressModel) TableName() string {
	return "module_progress"
}
