package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"geocourse_backend/internals/features/courses/enrollments/dto"
	"geocourse_backend/internals/features/courses/enrollments/model"
	userModel "geocourse_backend/internals/features/users/user/model"
	helpers "geocourse_backend/internals/helpers"
)

// EnrollmentAdminController gives admins visibility and manual control
// over enrollments and gateway traffic.
type EnrollmentAdminController struct {
	DB *gorm.DB
}

func NewEnrollmentAdminController(db *gorm.DB) *EnrollmentAdminController {
	return &EnrollmentAdminController{DB: db}
}

func (ctrl *EnrollmentAdminController) GetAllEnrollments(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EnrollmentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var enrollments []model.EnrollmentModel
	if err := q.Order("enrollment_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&enrollments).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	out := make([]dto.EnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.ToEnrollmentDTO(e))
	}
	return helpers.JsonList(c, "Enrollments fetched", out, helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ActivateEnrollment settles an enrollment by hand, e.g. after a bank
// transfer outside the gateway.
func (ctrl *EnrollmentAdminController) ActivateEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var enrollment model.EnrollmentModel
	if err := ctrl.DB.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	if enrollment.IsActive() {
		return helpers.JsonError(c, fiber.StatusConflict, "Enrollment already active")
	}

	now := time.Now().UTC()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&enrollment).Updates(map[string]interface{}{
			"enrollment_status":       model.EnrollmentStatusActive,
			"enrollment_activated_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", enrollment.EnrollmentUserID).
			Update("user_is_paid", true).Error
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to activate enrollment")
	}

	enrollment.EnrollmentStatus = model.EnrollmentStatusActive
	enrollment.EnrollmentActivatedAt = &now
	return helpers.JsonUpdated(c, "Enrollment activated", dto.ToEnrollmentDTO(enrollment))
}

func (ctrl *EnrollmentAdminController) GetGatewayEvents(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentGatewayEventModel{})
	if orderID := c.Query("order_id"); orderID != "" {
		q = q.Where("payment_gateway_event_order_id = ?", orderID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count gateway events")
	}

	var events []model.PaymentGatewayEventModel
	if err := q.Order("payment_gateway_event_received_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch gateway events")
	}

	return helpers.JsonList(c, "Gateway events fetched", events, helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
