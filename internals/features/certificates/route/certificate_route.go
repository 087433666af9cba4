package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certController "geocourse_backend/internals/features/certificates/controller"
)

// CertificateVerifyRoutes registers the public serial verification.
func CertificateVerifyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)
	api.Get("/certificates/verify/:serial", ctrl.VerifyCertificate)
}

// CertificateRoutes registers the authenticated certificate endpoints.
func CertificateRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)

	user.Get("/courses/:id/certificate", ctrl.GetMyCertificate)
	user.Get("/courses/:id/certificate/download", ctrl.DownloadMyCertificate)
}

// CertificateAdminRoutes registers the admin certificate listing.
func CertificateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)
	admin.Get("/certificates", ctrl.GetAllCertificates)
}
