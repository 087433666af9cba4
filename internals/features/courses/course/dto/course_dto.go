package dto

import (
	"time"

	"github.com/google/uuid"

	"geocourse_backend/internals/features/courses/course/model"
)

/* =============================
   Requests
============================= */

type CreateCourseRequest struct {
	CourseTitle       string `json:"course_title" validate:"required,min=3,max=150"`
	CourseSlug        string `json:"course_slug" validate:"required,min=3,max=160"`
	CourseDescription string `json:"course_description"`
	CoursePrice       int64  `json:"course_price" validate:"gte=0"`
	CourseCurrency    string `json:"course_currency"`
	CourseIsPublished bool   `json:"course_is_published"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string `json:"course_title" validate:"omitempty,min=3,max=150"`
	CourseDescription *string `json:"course_description"`
	CoursePrice       *int64  `json:"course_price" validate:"omitempty,gte=0"`
	CourseIsPublished *bool   `json:"course_is_published"`
}

type CreateCourseModuleRequest struct {
	CourseModuleTitle       string `json:"course_module_title" validate:"required,min=3,max=150"`
	CourseModuleDescription string `json:"course_module_description"`
	CourseModuleContent     string `json:"course_module_content"`
	CourseModuleOrder       int    `json:"course_module_order" validate:"required,gte=1"`
	CourseModuleRole        string `json:"course_module_role" validate:"omitempty,oneof=content quiz"`
}

type UpdateCourseModuleRequest struct {
	CourseModuleTitle       *string `json:"course_module_title" validate:"omitempty,min=3,max=150"`
	CourseModuleDescription *string `json:"course_module_description"`
	CourseModuleContent     *string `json:"course_module_content"`
	CourseModuleOrder       *int    `json:"course_module_order" validate:"omitempty,gte=1"`
	CourseModuleRole        *string `json:"course_module_role" validate:"omitempty,oneof=content quiz"`
}

/* =============================
   Responses
============================= */

type CourseDTO struct {
	CourseID          uuid.UUID `json:"course_id"`
	CourseTitle       string    `json:"course_title"`
	CourseSlug        string    `json:"course_slug"`
	CourseDescription string    `json:"course_description"`
	CoursePrice       int64     `json:"course_price"`
	CourseCurrency    string    `json:"course_currency"`
	CourseIsPublished bool      `json:"course_is_published"`
	CourseCreatedAt   time.Time `json:"course_created_at"`
}

type CourseModuleDTO struct {
	CourseModuleID          uuid.UUID `json:"course_module_id"`
	CourseModuleCourseID    uuid.UUID `json:"course_module_course_id"`
	CourseModuleTitle       string    `json:"course_module_title"`
	CourseModuleDescription string    `json:"course_module_description"`
	CourseModuleOrder       int       `json:"course_module_order"`
	CourseModuleRole        string    `json:"course_module_role"`
}

// CourseModuleDetailDTO includes the module body; only returned when
// the caller has unlocked the module.
type CourseModuleDetailDTO struct {
	CourseModuleDTO
	CourseModuleContent string `json:"course_module_content"`
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:          m.CourseID,
		CourseTitle:       m.CourseTitle,
		CourseSlug:        m.CourseSlug,
		CourseDescription: m.CourseDescription,
		CoursePrice:       m.CoursePrice,
		CourseCurrency:    m.CourseCurrency,
		CourseIsPublished: m.CourseIsPublished,
		CourseCreatedAt:   m.CourseCreatedAt,
	}
}

func ToCourseModuleDTO(m model.CourseModuleModel) CourseModuleDTO {
	return CourseModuleDTO{
		CourseModuleID:          m.CourseModuleID,
		CourseModuleCourseID:    m.CourseModuleCourseID,
		CourseModuleTitle:       m.CourseModuleTitle,
		CourseModuleDescription: m.CourseModuleDescription,
		CourseModuleOrder:       m.CourseModuleOrder,
		CourseModuleRole:        m.CourseModuleRole,
	}
}

func ToCourseModuleDetailDTO(m model.CourseModuleModel) CourseModuleDetailDTO {
	return CourseModuleDetailDTO{
		CourseModuleDTO:     ToCourseModuleDTO(m),
		CourseModuleContent: m.CourseModuleContent,
	}
}
