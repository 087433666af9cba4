package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment lifecycle states.
const (
	EnrollmentStatusPending = "pending"
	EnrollmentStatusActive  = "active"
	EnrollmentStatusFailed  = "failed"
)

type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentUserID   uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollment_user_course,priority:1" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_user_course,priority:2" json:"enrollment_course_id"`

	EnrollmentStatus string `gorm:"column:enrollment_status;type:varchar(16);not null;default:'pending'" json:"enrollment_status"`

	// Midtrans order reference, set when the enrollment is paid.
	EnrollmentOrderID   *string `gorm:"column:enrollment_order_id;type:varchar(64);unique" json:"enrollment_order_id,omitempty"`
	EnrollmentSnapToken *string `gorm:"column:enrollment_snap_token;type:text" json:"enrollment_snap_token,omitempty"`
	EnrollmentAmount    int64   `gorm:"column:enrollment_amount;type:bigint;not null;default:0" json:"enrollment_amount"`

	EnrollmentActivatedAt *time.Time `gorm:"column:enrollment_activated_at" json:"enrollment_activated_at,omitempty"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "course_enrollments"
}

func (e *EnrollmentModel) IsActive() bool {
	return e.EnrollmentStatus == EnrollmentStatusActive
}
