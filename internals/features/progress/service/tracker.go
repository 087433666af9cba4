package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "geocourse_backend/internals/features/courses/course/model"
	enrollmentModel "geocourse_backend/internals/features/courses/enrollments/model"
	"geocourse_backend/internals/features/progress/model"
)

// ModuleStatus is the per-module view of a user's position in a course.
type ModuleStatus struct {
	Module    courseModel.CourseModuleModel
	Unlocked  bool
	Completed bool
}

// IsUnlocked decides whether modules[idx] is reachable given the set of
// completed module IDs. Modules must be sorted by order ascending.
//
// The first module is always unlocked. A content module unlocks when its
// immediate predecessor is completed. A quiz module unlocks only when
// every preceding module is completed.
func IsUnlocked(modules []courseModel.CourseModuleModel, idx int, completed map[uuid.UUID]bool) bool {
	if idx < 0 || idx >= len(modules) {
		return false
	}
	if idx == 0 {
		return true
	}
	if modules[idx].IsQuiz() {
		for i := 0; i < idx; i++ {
			if !completed[modules[i].CourseModuleID] {
				return false
			}
		}
		return true
	}
	return completed[modules[idx-1].CourseModuleID]
}

// BuildOutline folds modules and completion state into per-module statuses.
func BuildOutline(modules []courseModel.CourseModuleModel, completed map[uuid.UUID]bool) []ModuleStatus {
	sorted := make([]courseModel.CourseModuleModel, len(modules))
	copy(sorted, modules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CourseModuleOrder < sorted[j].CourseModuleOrder
	})

	out := make([]ModuleStatus, 0, len(sorted))
	for i, m := range sorted {
		out = append(out, ModuleStatus{
			Module:    m,
			Unlocked:  IsUnlocked(sorted, i, completed),
			Completed: completed[m.CourseModuleID],
		})
	}
	return out
}

// Tracker answers unlock questions and records completions.
type Tracker struct {
	DB *gorm.DB
}

func NewTracker(db *gorm.DB) *Tracker {
	return &Tracker{DB: db}
}

// RequireActiveEnrollment returns 403 unless the user holds an active
// enrollment on the course.
func (t *Tracker) RequireActiveEnrollment(userID, courseID uuid.UUID) error {
	var enrollment enrollmentModel.EnrollmentModel
	if err := t.DB.Where(
		"enrollment_user_id = ? AND enrollment_course_id = ? AND enrollment_status = ?",
		userID, courseID, enrollmentModel.EnrollmentStatusActive,
	).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusForbidden, "You are not enrolled in this course")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	return nil
}

// CompletedModules loads the user's completed module IDs for a course.
func (t *Tracker) CompletedModules(userID, courseID uuid.UUID) (map[uuid.UUID]bool, error) {
	var rows []model.ModuleProgressModel
	if err := t.DB.
		Joins("JOIN course_modules ON course_modules.course_module_id = module_progress.module_progress_module_id").
		Where("module_progress.module_progress_user_id = ?", userID).
		Where("course_modules.course_module_course_id = ?", courseID).
		Where("module_progress.module_progress_completed = ?", true).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	completed := make(map[uuid.UUID]bool, len(rows))
	for _, r := range rows {
		completed[r.ModuleProgressModuleID] = true
	}
	return completed, nil
}

// CourseModules loads a course's modules sorted by order.
func (t *Tracker) CourseModules(courseID uuid.UUID) ([]courseModel.CourseModuleModel, error) {
	var modules []courseModel.CourseModuleModel
	if err := t.DB.
		Where("course_module_course_id = ?", courseID).
		Order("course_module_order ASC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// CourseOutline returns the user's per-module view of a course.
func (t *Tracker) CourseOutline(userID, courseID uuid.UUID) ([]ModuleStatus, error) {
	modules, err := t.CourseModules(courseID)
	if err != nil {
		return nil, err
	}
	completed, err := t.CompletedModules(userID, courseID)
	if err != nil {
		return nil, err
	}
	return BuildOutline(modules, completed), nil
}

// IsModuleUnlocked answers the unlock question for a single module.
func (t *Tracker) IsModuleUnlocked(userID uuid.UUID, module courseModel.CourseModuleModel) (bool, error) {
	modules, err := t.CourseModules(module.CourseModuleCourseID)
	if err != nil {
		return false, err
	}
	completed, err := t.CompletedModules(userID, module.CourseModuleCourseID)
	if err != nil {
		return false, err
	}
	for i, m := range modules {
		if m.CourseModuleID == module.CourseModuleID {
			return IsUnlocked(modules, i, completed), nil
		}
	}
	return false, fmt.Errorf("module %s not in course %s", module.CourseModuleID, module.CourseModuleCourseID)
}

// MarkComplete records completion of a module for a user. The write is
// an atomic upsert on the (user, module) unique key, so concurrent
// completions of the same module collapse into one row.
func (t *Tracker) MarkComplete(db *gorm.DB, userID, moduleID uuid.UUID, now time.Time) error {
	progress := model.ModuleProgressModel{
		ModuleProgressUserID:      userID,
		ModuleProgressModuleID:    moduleID,
		ModuleProgressCompleted:   true,
		ModuleProgressCompletedAt: &now,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "module_progress_user_id"},
			{Name: "module_progress_module_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"module_progress_completed":    true,
			"module_progress_completed_at": now,
		}),
	}).Create(&progress).Error
}
