package dto

import (
	"time"

	"github.com/google/uuid"

	"geocourse_backend/internals/features/courses/enrollments/model"
)

type EnrollRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type EnrollmentDTO struct {
	EnrollmentID          uuid.UUID  `json:"enrollment_id"`
	EnrollmentUserID      uuid.UUID  `json:"enrollment_user_id"`
	EnrollmentCourseID    uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentStatus      string     `json:"enrollment_status"`
	EnrollmentOrderID     *string    `json:"enrollment_order_id,omitempty"`
	EnrollmentAmount      int64      `json:"enrollment_amount"`
	EnrollmentActivatedAt *time.Time `json:"enrollment_activated_at,omitempty"`
	EnrollmentCreatedAt   time.Time  `json:"enrollment_created_at"`
}

func ToEnrollmentDTO(m model.EnrollmentModel) EnrollmentDTO {
	return EnrollmentDTO{
		EnrollmentID:          m.EnrollmentID,
		EnrollmentUserID:      m.EnrollmentUserID,
		EnrollmentCourseID:    m.EnrollmentCourseID,
		EnrollmentStatus:      m.EnrollmentStatus,
		EnrollmentOrderID:     m.EnrollmentOrderID,
		EnrollmentAmount:      m.EnrollmentAmount,
		EnrollmentActivatedAt: m.EnrollmentActivatedAt,
		EnrollmentCreatedAt:   m.EnrollmentCreatedAt,
	}
}
