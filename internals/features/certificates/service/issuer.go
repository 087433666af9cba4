package service

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"geocourse_backend/internals/features/certificates/model"
	courseModel "geocourse_backend/internals/features/courses/course/model"
	quizModel "geocourse_backend/internals/features/quizzes/model"
	quizService "geocourse_backend/internals/features/quizzes/service"
	userModel "geocourse_backend/internals/features/users/user/model"
)

const (
	certWidth  = 1400
	certHeight = 990
)

var ErrNotEligible = fmt.Errorf("quiz not passed")

// Issuer decides certificate eligibility, persists issued certificates
// and renders them as PNG.
type Issuer struct {
	DB *gorm.DB

	titleFace font.Face
	bodyFace  font.Face
	nameFace  font.Face
}

func NewIssuer(db *gorm.DB) *Issuer {
	iss := &Issuer{DB: db}

	if fontPath := strings.TrimSpace(os.Getenv("CERTIFICATE_FONT")); fontPath != "" {
		var err error
		if iss.titleFace, err = loadFontFace(fontPath, 56); err != nil {
			log.Printf("[ERROR] Failed to load certificate font: %v", err)
		}
		iss.nameFace, _ = loadFontFace(fontPath, 72)
		iss.bodyFace, _ = loadFontFace(fontPath, 30)
	}
	return iss
}

// PassedQuizResult returns the passing attempt for the course's quiz
// module, or ErrNotEligible.
func (i *Issuer) PassedQuizResult(userID, courseID uuid.UUID) (*quizModel.QuizResultModel, error) {
	var quizModule courseModel.CourseModuleModel
	if err := i.DB.Where(
		"course_module_course_id = ? AND course_module_role = ?",
		courseID, courseModel.ModuleRoleQuiz,
	).Order("course_module_order DESC").First(&quizModule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotEligible
		}
		return nil, err
	}

	var results []quizModel.QuizResultModel
	if err := i.DB.
		Where("quiz_result_user_id = ? AND quiz_result_module_id = ?", userID, quizModule.CourseModuleID).
		Order("quiz_result_attempt_number ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	decision := quizService.EvaluateAttempts(results, time.Now().UTC())
	if decision.State != quizService.GateStatePassed {
		return nil, ErrNotEligible
	}

	for idx := range results {
		if results[idx].QuizResultPassed {
			return &results[idx], nil
		}
	}
	return nil, ErrNotEligible
}

// Issue creates the certificate for (user, course) if the quiz was
// passed. Issuing twice returns the existing certificate; the unique
// (user, course) key absorbs concurrent issues.
func (i *Issuer) Issue(userID, courseID uuid.UUID) (*model.UserCertificateModel, error) {
	var existing model.UserCertificateModel
	err := i.DB.Where(
		"user_certificate_user_id = ? AND user_certificate_course_id = ?", userID, courseID,
	).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	passed, err := i.PassedQuizResult(userID, courseID)
	if err != nil {
		return nil, err
	}

	var user userModel.UserModel
	if err := i.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	var course courseModel.CourseModel
	if err := i.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cert := model.UserCertificateModel{
		UserCertificateUserID:      userID,
		UserCertificateCourseID:    courseID,
		UserCertificateSerial:      GenerateSerial(now),
		UserCertificateHolderName:  user.UserName,
		UserCertificateCourseTitle: course.CourseTitle,
		UserCertificateScore:       passed.QuizResultScore,
		UserCertificateIssuedAt:    passed.QuizResultCreatedAt,
	}
	if err := i.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_certificate_user_id"},
			{Name: "user_certificate_course_id"},
		},
		DoNothing: true,
	}).Create(&cert).Error; err != nil {
		return nil, err
	}

	// re-read: a concurrent issue may have won the insert
	if err := i.DB.Where(
		"user_certificate_user_id = ? AND user_certificate_course_id = ?", userID, courseID,
	).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Render draws the certificate PNG.
func (i *Issuer) Render(cert *model.UserCertificateModel) (bytes.Buffer, error) {
	dc := gg.NewContext(certWidth, certHeight)

	// background
	dc.SetColor(color.White)
	dc.Clear()

	// double border
	dc.SetRGB(0.12, 0.29, 0.49)
	dc.SetLineWidth(8)
	dc.DrawRectangle(30, 30, certWidth-60, certHeight-60)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(48, 48, certWidth-96, certHeight-96)
	dc.Stroke()

	// diagonal watermark
	dc.Push()
	dc.SetRGBA(0.12, 0.29, 0.49, 0.08)
	if i.titleFace != nil {
		dc.SetFontFace(i.titleFace)
	}
	dc.RotateAbout(gg.Radians(-30), certWidth/2, certHeight/2)
	dc.DrawStringAnchored("GEOCOURSE", certWidth/2, certHeight/2, 0.5, 0.5)
	dc.Pop()

	cx := float64(certWidth) / 2

	dc.SetRGB(0.12, 0.29, 0.49)
	if i.titleFace != nil {
		dc.SetFontFace(i.titleFace)
	}
	dc.DrawStringAnchored("CERTIFICATE OF COMPLETION", cx, 170, 0.5, 0.5)

	dc.SetRGB(0.2, 0.2, 0.2)
	if i.bodyFace != nil {
		dc.SetFontFace(i.bodyFace)
	}
	dc.DrawStringAnchored("This certifies that", cx, 300, 0.5, 0.5)

	dc.SetRGB(0, 0, 0)
	if i.nameFace != nil {
		dc.SetFontFace(i.nameFace)
	}
	dc.DrawStringAnchored(cert.UserCertificateHolderName, cx, 400, 0.5, 0.5)

	// underline the name
	nw, _ := dc.MeasureString(cert.UserCertificateHolderName)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-nw/2-20, 430, cx+nw/2+20, 430)
	dc.Stroke()

	dc.SetRGB(0.2, 0.2, 0.2)
	if i.bodyFace != nil {
		dc.SetFontFace(i.bodyFace)
	}
	dc.DrawStringAnchored("has successfully completed the course", cx, 510, 0.5, 0.5)

	dc.SetRGB(0.12, 0.29, 0.49)
	if i.titleFace != nil {
		dc.SetFontFace(i.titleFace)
	}
	dc.DrawStringAnchored(cert.UserCertificateCourseTitle, cx, 590, 0.5, 0.5)

	dc.SetRGB(0.2, 0.2, 0.2)
	if i.bodyFace != nil {
		dc.SetFontFace(i.bodyFace)
	}
	dc.DrawStringAnchored(
		fmt.Sprintf("with a final score of %.0f%%", cert.UserCertificateScore),
		cx, 670, 0.5, 0.5,
	)
	dc.DrawStringAnchored(
		cert.UserCertificateIssuedAt.Format("2 January 2006"),
		cx, 730, 0.5, 0.5,
	)

	// signature line and serial
	dc.SetLineWidth(2)
	dc.DrawLine(180, 870, 480, 870)
	dc.Stroke()
	dc.DrawStringAnchored("Course Director", 330, 900, 0.5, 0.5)

	dc.DrawStringAnchored("Serial: "+cert.UserCertificateSerial, certWidth-280, 900, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode certificate PNG: %w", err)
	}
	return buf, nil
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
