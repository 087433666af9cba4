package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "geocourse_backend/internals/features/courses/course/model"
	"geocourse_backend/internals/features/quizzes/dto"
	"geocourse_backend/internals/features/quizzes/model"
	helpers "geocourse_backend/internals/helpers"
)

// QuizAdminController manages question banks and exposes attempt
// history for review.
type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

func (ctrl *QuizAdminController) requireQuizModule(moduleID uuid.UUID) (*courseModel.CourseModuleModel, error) {
	var module courseModel.CourseModuleModel
	if err := ctrl.DB.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Module not found")
	}
	if !module.IsQuiz() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Module is not a quiz")
	}
	return &module, nil
}

/* =============================
   📋 Questions
============================= */

func (ctrl *QuizAdminController) GetQuestions(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid module ID")
	}
	if _, err := ctrl.requireQuizModule(moduleID); err != nil {
		return err
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.
		Where("quiz_question_module_id = ?", moduleID).
		Order("quiz_question_order ASC, quiz_question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	out := make([]dto.QuizQuestionAdminDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.ToQuizQuestionAdminDTO(q))
	}
	return helpers.JsonOK(c, "OK", out)
}

func (ctrl *QuizAdminController) CreateQuestion(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid module ID")
	}
	if _, err := ctrl.requireQuizModule(moduleID); err != nil {
		return err
	}

	var req dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	if !correctWithinOptions(req.QuizQuestionCorrect, len(req.QuizQuestionOptions)) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Correct option letter is outside the option list")
	}

	question := model.QuizQuestionModel{
		QuizQuestionModuleID: moduleID,
		QuizQuestionText:     req.QuizQuestionText,
		QuizQuestionOptions:  req.QuizQuestionOptions,
		QuizQuestionCorrect:  req.QuizQuestionCorrect,
		QuizQuestionOrder:    req.QuizQuestionOrder,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helpers.JsonCreated(c, "Question created", dto.ToQuizQuestionAdminDTO(question))
}

func (ctrl *QuizAdminController) UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var req dto.UpdateQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var question model.QuizQuestionModel
	if err := ctrl.DB.First(&question, "quiz_question_id = ?", questionID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	updates := map[string]interface{}{}
	if req.QuizQuestionText != nil {
		updates["quiz_question_text"] = *req.QuizQuestionText
	}
	if req.QuizQuestionOptions != nil {
		updates["quiz_question_options"] = pq.StringArray(req.QuizQuestionOptions)
	}
	if req.QuizQuestionCorrect != nil {
		updates["quiz_question_correct"] = *req.QuizQuestionCorrect
	}
	if req.QuizQuestionOrder != nil {
		updates["quiz_question_order"] = *req.QuizQuestionOrder
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	optionCount := len(question.QuizQuestionOptions)
	if req.QuizQuestionOptions != nil {
		optionCount = len(req.QuizQuestionOptions)
	}
	correct := question.QuizQuestionCorrect
	if req.QuizQuestionCorrect != nil {
		correct = *req.QuizQuestionCorrect
	}
	if !correctWithinOptions(correct, optionCount) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Correct option letter is outside the option list")
	}

	if err := ctrl.DB.Model(&question).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helpers.JsonUpdated(c, "Question updated", dto.ToQuizQuestionAdminDTO(question))
}

func (ctrl *QuizAdminController) DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	res := ctrl.DB.Delete(&model.QuizQuestionModel{}, "quiz_question_id = ?", questionID)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helpers.JsonDeleted(c, "Question deleted", nil)
}

/* =============================
   📋 Results
============================= */

func (ctrl *QuizAdminController) GetResults(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.QuizResultModel{})
	if moduleID := c.Query("module_id"); moduleID != "" {
		q = q.Where("quiz_result_module_id = ?", moduleID)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("quiz_result_user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var results []model.QuizResultModel
	if err := q.Order("quiz_result_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&results).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	out := make([]dto.QuizResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToQuizResultDTO(r))
	}
	return helpers.JsonList(c, "Quiz results fetched", out, helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =============================
   Util
============================= */

// correctWithinOptions checks that the letter maps to an existing
// option (A is index 0).
func correctWithinOptions(letter string, optionCount int) bool {
	if len(letter) != 1 {
		return false
	}
	idx := int(letter[0] - 'A')
	return idx >= 0 && idx < optionCount
}
