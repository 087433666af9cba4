package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "geocourse_backend/internals/features/courses/course/model"
	"geocourse_backend/internals/features/courses/enrollments/dto"
	"geocourse_backend/internals/features/courses/enrollments/model"
	enrollmentService "geocourse_backend/internals/features/courses/enrollments/service"
	userModel "geocourse_backend/internals/features/users/user/model"
	helpers "geocourse_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/* =============================
   🟢 ENROLL
============================= */

// Enroll registers the caller on a course. Free courses activate
// immediately; paid courses get a pending enrollment plus a Midtrans
// Snap token to complete payment.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("course_id = ? AND course_is_published = ?", req.CourseID, true).
		First(&course).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var existing model.EnrollmentModel
	err = ctrl.DB.Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, course.CourseID).
		First(&existing).Error
	if err == nil {
		if existing.IsActive() {
			return helpers.JsonError(c, fiber.StatusConflict, "Already enrolled in this course")
		}
		// pending or failed: reuse the row, re-issue payment below
	} else if err != gorm.ErrRecordNotFound {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}

	enrollment := existing
	if err == gorm.ErrRecordNotFound {
		enrollment = model.EnrollmentModel{
			EnrollmentUserID:   userID,
			EnrollmentCourseID: course.CourseID,
			EnrollmentAmount:   course.CoursePrice,
			EnrollmentStatus:   model.EnrollmentStatusPending,
		}
		if err := ctrl.DB.Create(&enrollment).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
				return helpers.JsonError(c, fiber.StatusConflict, "Already enrolled in this course")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create enrollment")
		}
	}

	// free course: activate straight away
	if course.CoursePrice <= 0 {
		now := time.Now().UTC()
		if err := ctrl.DB.Model(&enrollment).Updates(map[string]interface{}{
			"enrollment_status":       model.EnrollmentStatusActive,
			"enrollment_activated_at": now,
		}).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to activate enrollment")
		}
		enrollment.EnrollmentStatus = model.EnrollmentStatusActive
		enrollment.EnrollmentActivatedAt = &now
		return helpers.JsonCreated(c, "Enrolled successfully", dto.ToEnrollmentDTO(enrollment))
	}

	// paid course: build a Midtrans order
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	orderID := fmt.Sprintf("COURSE-%s-%d", course.CourseID.String()[:8], time.Now().UnixNano())
	token, err := enrollmentService.GenerateSnapToken(orderID, course.CoursePrice, user.UserName, user.UserEmail)
	if err != nil {
		log.Printf("[ERROR] Midtrans snap token failed: %v", err)
		return helpers.JsonError(c, fiber.StatusBadGateway, "Failed to create payment token")
	}

	if err := ctrl.DB.Model(&enrollment).Updates(map[string]interface{}{
		"enrollment_order_id":   orderID,
		"enrollment_snap_token": token,
		"enrollment_amount":     course.CoursePrice,
		"enrollment_status":     model.EnrollmentStatusPending,
	}).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to store payment reference")
	}

	return helpers.JsonCreated(c, "Enrollment created. Continue with payment.", fiber.Map{
		"enrollment": dto.ToEnrollmentDTO(enrollment),
		"order_id":   orderID,
		"snap_token": token,
	})
}

/* =============================
   🟢 MY ENROLLMENTS
============================= */

func (ctrl *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var enrollments []model.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_user_id = ?", userID).
		Order("enrollment_created_at DESC").
		Find(&enrollments).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	out := make([]dto.EnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.ToEnrollmentDTO(e))
	}
	return helpers.JsonOK(c, "OK", out)
}

/* =============================
   🟢 MIDTRANS WEBHOOK
============================= */

// HandleMidtransNotification processes a payment status notification.
// The raw payload is stored first so nothing is lost even when the
// enrollment update fails.
func (ctrl *EnrollmentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	event := model.PaymentGatewayEventModel{
		PaymentGatewayEventOrderID: orderID,
		PaymentGatewayEventStatus:  transactionStatus,
		PaymentGatewayEventPayload: c.Body(),
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Printf("[ERROR] Failed to store gateway event for order %s: %v", orderID, err)
	}

	if err := ctrl.applyPaymentStatus(orderID, transactionStatus); err != nil {
		log.Printf("[ERROR] Webhook processing failed for order %s: %v", orderID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (ctrl *EnrollmentController) applyPaymentStatus(orderID, transactionStatus string) error {
	return ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var enrollment model.EnrollmentModel
		if err := tx.Where("enrollment_order_id = ?", orderID).First(&enrollment).Error; err != nil {
			return fmt.Errorf("enrollment not found for order %s: %w", orderID, err)
		}

		switch transactionStatus {
		case "settlement", "capture", "success":
			if enrollment.IsActive() {
				return nil // duplicate notification
			}
			now := time.Now().UTC()
			if err := tx.Model(&enrollment).Updates(map[string]interface{}{
				"enrollment_status":       model.EnrollmentStatusActive,
				"enrollment_activated_at": now,
			}).Error; err != nil {
				return err
			}
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", enrollment.EnrollmentUserID).
				Update("user_is_paid", true).Error; err != nil {
				return err
			}
			log.Printf("[SUCCESS] Enrollment %s activated via order %s", enrollment.EnrollmentID, orderID)
		case "deny", "cancel", "expire", "failure", "failed":
			if enrollment.IsActive() {
				return nil // never downgrade a paid enrollment
			}
			if err := tx.Model(&enrollment).
				Update("enrollment_status", model.EnrollmentStatusFailed).Error; err != nil {
				return err
			}
		default:
			// pending and other intermediate states: leave as-is
		}
		return nil
	})
}
