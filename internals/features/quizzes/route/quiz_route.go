package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "geocourse_backend/internals/features/quizzes/controller"
)

// QuizRoutes registers the learner-facing quiz endpoints.
func QuizRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	quizzes := user.Group("/quizzes")
	quizzes.Get("/:id", ctrl.GetQuiz)
	quizzes.Get("/:id/status", ctrl.GetGateStatus)
	quizzes.Get("/:id/attempts", ctrl.GetMyAttempts)
	quizzes.Post("/:id/submit", ctrl.SubmitQuiz)
}

// QuizAdminRoutes registers question management and result review.
func QuizAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizAdminController(db)

	quizzes := admin.Group("/quizzes")
	quizzes.Get("/:id/questions", ctrl.GetQuestions)
	quizzes.Post("/:id/questions", ctrl.CreateQuestion)
	quizzes.Put("/questions/:questionId", ctrl.UpdateQuestion)
	quizzes.Delete("/questions/:questionId", ctrl.DeleteQuestion)

	admin.Get("/quiz-results", ctrl.GetResults)
}
