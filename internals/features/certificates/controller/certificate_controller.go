package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certService "geocourse_backend/internals/features/certificates/service"
	"geocourse_backend/internals/features/certificates/model"
	progressService "geocourse_backend/internals/features/progress/service"
	helpers "geocourse_backend/internals/helpers"
)

type CertificateController struct {
	DB      *gorm.DB
	Issuer  *certService.Issuer
	Tracker *progressService.Tracker
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{
		DB:      db,
		Issuer:  certService.NewIssuer(db),
		Tracker: progressService.NewTracker(db),
	}
}

// GetMyCertificate issues the certificate if the caller passed the
// course quiz and returns its metadata.
func (ctrl *CertificateController) GetMyCertificate(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	if err := ctrl.Tracker.RequireActiveEnrollment(userID, courseID); err != nil {
		return err
	}

	cert, err := ctrl.Issuer.Issue(userID, courseID)
	if err != nil {
		if err == certService.ErrNotEligible {
			return helpers.JsonError(c, fiber.StatusForbidden, "Certificate not available. Pass the course quiz first.")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue certificate")
	}

	return helpers.JsonOK(c, "OK", cert)
}

// DownloadMyCertificate streams the rendered PNG.
func (ctrl *CertificateController) DownloadMyCertificate(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	if err := ctrl.Tracker.RequireActiveEnrollment(userID, courseID); err != nil {
		return err
	}

	cert, err := ctrl.Issuer.Issue(userID, courseID)
	if err != nil {
		if err == certService.ErrNotEligible {
			return helpers.JsonError(c, fiber.StatusForbidden, "Certificate not available. Pass the course quiz first.")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue certificate")
	}

	png, err := ctrl.Issuer.Render(cert)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to render certificate")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="certificate-%s.png"`, cert.UserCertificateSerial))
	return c.Send(png.Bytes())
}

// GetAllCertificates lists issued certificates for admins.
func (ctrl *CertificateController) GetAllCertificates(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserCertificateModel{})
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_certificate_user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count certificates")
	}

	var certs []model.UserCertificateModel
	if err := q.Order("user_certificate_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&certs).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}

	return helpers.JsonList(c, "Certificates fetched", certs, helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// VerifyCertificate is public: anyone holding a serial can check it.
func (ctrl *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	serial := c.Params("serial")

	var cert model.UserCertificateModel
	if err := ctrl.DB.Where("user_certificate_serial = ?", serial).First(&cert).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Certificate not found")
	}

	return helpers.JsonOK(c, "OK", fiber.Map{
		"serial":       cert.UserCertificateSerial,
		"holder_name":  cert.UserCertificateHolderName,
		"course_title": cert.UserCertificateCourseTitle,
		"issued_at":    cert.UserCertificateIssuedAt,
	})
}
