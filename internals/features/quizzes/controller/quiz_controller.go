package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "geocourse_backend/internals/features/courses/course/model"
	progressService "geocourse_backend/internals/features/progress/service"
	"geocourse_backend/internals/features/quizzes/dto"
	"geocourse_backend/internals/features/quizzes/model"
	quizService "geocourse_backend/internals/features/quizzes/service"
	helpers "geocourse_backend/internals/helpers"
)

var validate = validator.New()

type QuizController struct {
	DB      *gorm.DB
	Tracker *progressService.Tracker
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Tracker: progressService.NewTracker(db)}
}

// loadQuizModule resolves :id as a quiz module and checks enrollment
// plus the sequential unlock rule.
func (ctrl *QuizController) loadQuizModule(c *fiber.Ctx, userID uuid.UUID) (*courseModel.CourseModuleModel, error) {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid module ID")
	}

	var module courseModel.CourseModuleModel
	if err := ctrl.DB.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Quiz not found")
	}
	if !module.IsQuiz() {
		return nil, fiber.NewError(fiber.StatusNotFound, "Module is not a quiz")
	}

	if err := ctrl.Tracker.RequireActiveEnrollment(userID, module.CourseModuleCourseID); err != nil {
		return nil, err
	}

	unlocked, err := ctrl.Tracker.IsModuleUnlocked(userID, module)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check quiz access")
	}
	if !unlocked {
		return nil, fiber.NewError(fiber.StatusForbidden, "Quiz is locked. Complete all course modules first.")
	}
	return &module, nil
}

/* =============================
   🟢 GET QUIZ (questions)
============================= */

func (ctrl *QuizController) GetQuiz(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	module, err := ctrl.loadQuizModule(c, userID)
	if err != nil {
		return err
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.
		Where("quiz_question_module_id = ?", module.CourseModuleID).
		Order("quiz_question_order ASC, quiz_question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz questions")
	}

	out := make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.ToQuizQuestionDTO(q))
	}
	return helpers.JsonOK(c, "OK", out)
}

/* =============================
   🟢 GATE STATUS
============================= */

func (ctrl *QuizController) GetGateStatus(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	module, err := ctrl.loadQuizModule(c, userID)
	if err != nil {
		return err
	}

	var results []model.QuizResultModel
	if err := ctrl.DB.
		Where("quiz_result_user_id = ? AND quiz_result_module_id = ?", userID, module.CourseModuleID).
		Order("quiz_result_attempt_number ASC").
		Find(&results).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz attempts")
	}

	decision := quizService.EvaluateAttempts(results, time.Now().UTC())
	return helpers.JsonOK(c, "OK", decision)
}

/* =============================
   🟢 SUBMIT QUIZ
============================= */

// submitRetries bounds how often a losing concurrent submit re-runs its
// transaction after a unique-key collision on the attempt number.
const submitRetries = 3

// SubmitQuiz grades an attempt. Eligibility is re-checked inside the
// transaction, and the unique (user, module, attempt_number) index
// rejects the loser of a concurrent submit; the loser retries against
// the winner's committed row, so duplicate submits cannot both claim
// the same attempt number or slip past the cooldown and daily cap.
func (ctrl *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	module, err := ctrl.loadQuizModule(c, userID)
	if err != nil {
		return err
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	now := time.Now().UTC()
	var created model.QuizResultModel
	var blocked *quizService.GateDecision

	var txErr error
	for try := 0; try < submitRetries; try++ {
		blocked = nil
		txErr = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			var results []model.QuizResultModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("quiz_result_user_id = ? AND quiz_result_module_id = ?", userID, module.CourseModuleID).
				Order("quiz_result_attempt_number ASC").
				Find(&results).Error; err != nil {
				return err
			}

			decision := quizService.EvaluateAttempts(results, now)
			if !decision.CanAttempt() {
				blocked = &decision
				return nil
			}

			var questions []model.QuizQuestionModel
			if err := tx.
				Where("quiz_question_module_id = ?", module.CourseModuleID).
				Find(&questions).Error; err != nil {
				return err
			}
			if len(questions) == 0 {
				return fiber.NewError(fiber.StatusConflict, "Quiz has no questions yet")
			}

			grade := quizService.Grade(questions, req.Answers)

			created = model.QuizResultModel{
				QuizResultUserID:        userID,
				QuizResultModuleID:      module.CourseModuleID,
				QuizResultScore:         grade.Score,
				QuizResultPassed:        grade.Passed,
				QuizResultAttemptNumber: quizService.NextAttemptNumber(results),
				QuizResultCreatedAt:     now,
			}
			if !grade.Passed {
				next := now.Add(quizService.RetryCooldown)
				created.QuizResultNextAttemptAvailable = &next
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}

			// a pass completes the quiz module
			if grade.Passed {
				return ctrl.Tracker.MarkComplete(tx, userID, module.CourseModuleID, now)
			}
			return nil
		})
		// lost the race for the attempt number: re-read the winner's
		// row and re-check the gate
		if txErr != nil && quizService.IsDuplicateAttempt(txErr) {
			continue
		}
		break
	}
	if txErr != nil && quizService.IsDuplicateAttempt(txErr) {
		return helpers.JsonError(c, fiber.StatusConflict, "Another submission for this quiz is in progress. Try again.")
	}
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to submit quiz")
	}

	if blocked != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "You are not eligible to attempt this quiz right now",
			"data":    blocked,
		})
	}

	return helpers.JsonCreated(c, "Quiz submitted", dto.ToQuizResultDTO(created))
}

/* =============================
   🟢 MY ATTEMPTS
============================= */

func (ctrl *QuizController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	module, err := ctrl.loadQuizModule(c, userID)
	if err != nil {
		return err
	}

	var results []model.QuizResultModel
	if err := ctrl.DB.
		Where("quiz_result_user_id = ? AND quiz_result_module_id = ?", userID, module.CourseModuleID).
		Order("quiz_result_attempt_number ASC").
		Find(&results).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz attempts")
	}

	out := make([]dto.QuizResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToQuizResultDTO(r))
	}
	return helpers.JsonOK(c, "OK", out)
}
