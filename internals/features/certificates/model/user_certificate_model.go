package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCertificateModel records an issued certificate. The PNG itself is
// rendered on download; only the facts it shows are stored.
type UserCertificateModel struct {
	UserCertificateID uuid.UUID `gorm:"column:user_certificate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_certificate_id"`

	UserCertificateUserID   uuid.UUID `gorm:"column:user_certificate_user_id;type:uuid;not null;uniqueIndex:uq_user_certificate_user_course,priority:1" json:"user_certificate_user_id"`
	UserCertificateCourseID uuid.UUID `gorm:"column:user_certificate_course_id;type:uuid;not null;uniqueIndex:uq_user_certificate_user_course,priority:2" json:"user_certificate_course_id"`

	UserCertificateSerial string `gorm:"column:user_certificate_serial;type:varchar(32);unique;not null" json:"user_certificate_serial"`

	// Snapshots taken at issue time so later edits don't change the
	// certificate.
	UserCertificateHolderName  string  `gorm:"column:user_certificate_holder_name;type:varchar(120);not null" json:"user_certificate_holder_name"`
	UserCertificateCourseTitle string  `gorm:"column:user_certificate_course_title;type:varchar(150);not null" json:"user_certificate_course_title"`
	UserCertificateScore       float64 `gorm:"column:user_certificate_score;type:numeric(5,2);not null" json:"user_certificate_score"`

	UserCertificateIssuedAt time.Time `gorm:"column:user_certificate_issued_at;not null" json:"user_certificate_issued_at"`

	UserCertificateCreatedAt time.Time `gorm:"column:user_certificate_created_at;autoCreateTime" json:"user_certificate_created_at"`
}

func (UserCertificateModel) TableName() string {
	return "user_certificates"
}
