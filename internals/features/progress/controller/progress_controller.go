package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "geocourse_backend/internals/features/courses/course/dto"
	courseModel "geocourse_backend/internals/features/courses/course/model"
	progressService "geocourse_backend/internals/features/progress/service"
	helpers "geocourse_backend/internals/helpers"
)

type ProgressController struct {
	DB      *gorm.DB
	Tracker *progressService.Tracker
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db, Tracker: progressService.NewTracker(db)}
}

type moduleOutlineEntry struct {
	courseDTO.CourseModuleDTO
	Unlocked  bool `json:"unlocked"`
	Completed bool `json:"completed"`
}

// GetCourseOutline returns the caller's unlock and completion state per
// module of a course.
func (ctrl *ProgressController) GetCourseOutline(c *fiber.Ctx) error {
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

	outline, err := ctrl.Tracker.CourseOutline(userID, courseID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to build course outline")
	}

	out := make([]moduleOutlineEntry, 0, len(outline))
	for _, s := range outline {
		out = append(out, moduleOutlineEntry{
			CourseModuleDTO: courseDTO.ToCourseModuleDTO(s.Module),
			Unlocked:        s.Unlocked,
			Completed:       s.Completed,
		})
	}
	return helpers.JsonOK(c, "OK", out)
}

// GetModuleContent serves one module's body, only when unlocked.
func (ctrl *ProgressController) GetModuleContent(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid module ID")
	}

	var module courseModel.CourseModuleModel
	if err := ctrl.DB.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	if err := ctrl.Tracker.RequireActiveEnrollment(userID, module.CourseModuleCourseID); err != nil {
		return err
	}

	unlocked, err := ctrl.Tracker.IsModuleUnlocked(userID, module)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to check module access")
	}
	if !unlocked {
		return helpers.JsonError(c, fiber.StatusForbidden, "Module is locked. Complete the previous module first.")
	}

	return helpers.JsonOK(c, "OK", courseDTO.ToCourseModuleDetailDTO(module))
}

// CompleteModule marks a content module as completed for the caller.
// Quiz modules are completed by passing the quiz, never here.
func (ctrl *ProgressController) CompleteModule(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid module ID")
	}

	var module courseModel.CourseModuleModel
	if err := ctrl.DB.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Module not found")
	}
	if module.IsQuiz() {
		return helpers.JsonError(c, fiber.StatusConflict, "Quiz modules are completed by passing the quiz")
	}

	if err := ctrl.Tracker.RequireActiveEnrollment(userID, module.CourseModuleCourseID); err != nil {
		return err
	}

	unlocked, err := ctrl.Tracker.IsModuleUnlocked(userID, module)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to check module access")
	}
	if !unlocked {
		return helpers.JsonError(c, fiber.StatusForbidden, "Module is locked. Complete the previous module first.")
	}

	if err := ctrl.Tracker.MarkComplete(ctrl.DB, userID, module.CourseModuleID, time.Now().UTC()); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to record completion")
	}

	return helpers.JsonUpdated(c, "Module completed", fiber.Map{
		"course_module_id": module.CourseModuleID,
		"completed":        true,
	})
}
