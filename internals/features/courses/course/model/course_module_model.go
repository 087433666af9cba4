package model

import (
	"time"

	"github.com/google/uuid"
)

// Module roles. A quiz module is gated by the quiz state machine,
// a content module by sequential completion of its predecessor.
const (
	ModuleRoleContent = "content"
	ModuleRoleQuiz    = "quiz"
)

type CourseModuleModel struct {
	CourseModuleID uuid.UUID `gorm:"column:course_module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_module_id"`

	CourseModuleCourseID uuid.UUID `gorm:"column:course_module_course_id;type:uuid;not null;index;uniqueIndex:uq_course_module_order,priority:1" json:"course_module_course_id"`

	CourseModuleTitle       string `gorm:"column:course_module_title;type:varchar(150);not null" json:"course_module_title"`
	CourseModuleDescription string `gorm:"column:course_module_description;type:text" json:"course_module_description"`
	CourseModuleContent     string `gorm:"column:course_module_content;type:text" json:"course_module_content"`

	// 1-based position inside the course; unique per course.
	CourseModuleOrder int `gorm:"column:course_module_order;not null;uniqueIndex:uq_course_module_order,priority:2" json:"course_module_order"`

	// "content" or "quiz".
	CourseModuleRole string `gorm:"column:course_module_role;type:varchar(16);not null;default:'content'" json:"course_module_role"`

	CourseModuleCreatedAt time.Time `gorm:"column:course_module_created_at;autoCreateTime" json:"course_module_created_at"`
	CourseModuleUpdatedAt time.Time `gorm:"column:course_module_updated_at;autoUpdateTime" json:"course_module_updated_at"`
}

func (CourseModuleModel) TableName() string {
	return "course_modules"
}

func (m *CourseModuleModel) IsQuiz() bool {
	return m.CourseModuleRole == ModuleRoleQuiz
}
