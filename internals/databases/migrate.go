package databases

import (
	"log"

	"gorm.io/gorm"

	certModel "geocourse_backend/internals/features/certificates/model"
	courseModel "geocourse_backend/internals/features/courses/course/model"
	enrollmentModel "geocourse_backend/internals/features/courses/enrollments/model"
	progressModel "geocourse_backend/internals/features/progress/model"
	quizModel "geocourse_backend/internals/features/quizzes/model"
	authModel "geocourse_backend/internals/features/users/auth/model"
	userModel "geocourse_backend/internals/features/users/user/model"
)

// MigrateModels runs AutoMigrate for every table the app owns.
func MigrateModels(db *gorm.DB) {
	log.Println("[INFO] Running database migrations...")

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},

		&courseModel.CourseModel{},
		&courseModel.CourseModuleModel{},
		&enrollmentModel.EnrollmentModel{},
		&enrollmentModel.PaymentGatewayEventModel{},

		&progressModel.ModuleProgressModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizResultModel{},
		&certModel.UserCertificateModel{},
	); err != nil {
		log.Fatalf("[ERROR] Migration failed: %v", err)
	}

	log.Println("✅ Database migration completed.")
}
