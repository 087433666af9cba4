package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;type:varchar(150);not null" json:"course_title"`
	CourseSlug        string    `gorm:"column:course_slug;type:varchar(160);unique;not null" json:"course_slug"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"course_description"`

	// Price in the smallest currency unit (IDR has no cents).
	CoursePrice    int64  `gorm:"column:course_price;type:bigint;not null;default:0" json:"course_price"`
	CourseCurrency string `gorm:"column:course_currency;type:varchar(8);not null;default:'IDR'" json:"course_currency"`

	CourseIsPublished bool `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
