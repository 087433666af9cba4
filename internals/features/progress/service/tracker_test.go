package service

import (
	"testing"

	"github.com/google/uuid"

	courseModel "geocourse_backend/internals/features/courses/course/model"
)

func buildCourse(roles ...string) []courseModel.CourseModuleModel {
	modules := make([]courseModel.CourseModuleModel, 0, len(roles))
	for i, role := range roles {
		modules = append(modules, courseModel.CourseModuleModel{
			CourseModuleID:    uuid.New(),
			CourseModuleOrder: i + 1,
			CourseModuleRole:  role,
		})
	}
	return modules
}

func TestFirstModuleAlwaysUnlocked(t *testing.T) {
	modules := buildCourse("content", "content", "quiz")
	if !IsUnlocked(modules, 0, map[uuid.UUID]bool{}) {
		t.Fatalf("expected first module to be unlocked with no progress")
	}
}

func TestContentModuleLockedUntilPredecessorCompleted(t *testing.T) {
	modules := buildCourse("content", "content", "content")
	completed := map[uuid.UUID]bool{}

	if IsUnlocked(modules, 1, completed) {
		t.Fatalf("expected module 2 to be locked before module 1 is completed")
	}

	completed[modules[0].CourseModuleID] = true
	if !IsUnlocked(modules, 1, completed) {
		t.Fatalf("expected module 2 to unlock after module 1 is completed")
	}
	if IsUnlocked(modules, 2, completed) {
		t.Fatalf("expected module 3 to stay locked while module 2 is incomplete")
	}
}

func TestSkippingAheadStaysLocked(t *testing.T) {
	modules := buildCourse("content", "content", "content", "content")
	// only module 3 completed, nothing before it
	completed := map[uuid.UUID]bool{modules[2].CourseModuleID: true}

	if IsUnlocked(modules, 1, completed) {
		t.Fatalf("expected module 2 to be locked when only module 3 is complete")
	}
	if !IsUnlocked(modules, 3, completed) {
		t.Fatalf("expected module 4 to unlock from its direct predecessor")
	}
}

func TestQuizRequiresAllPriorModules(t *testing.T) {
	modules := buildCourse("content", "content", "content", "content", "quiz")
	completed := map[uuid.UUID]bool{}

	for i := 0; i < 3; i++ {
		completed[modules[i].CourseModuleID] = true
	}
	if IsUnlocked(modules, 4, completed) {
		t.Fatalf("expected quiz to be locked with one content module incomplete")
	}

	completed[modules[3].CourseModuleID] = true
	if !IsUnlocked(modules, 4, completed) {
		t.Fatalf("expected quiz to unlock once all content modules are complete")
	}
}

func TestQuizLockedWithGapInMiddle(t *testing.T) {
	modules := buildCourse("content", "content", "content", "quiz")
	completed := map[uuid.UUID]bool{
		modules[0].CourseModuleID: true,
		modules[2].CourseModuleID: true,
	}
	if IsUnlocked(modules, 3, completed) {
		t.Fatalf("expected quiz to be locked while module 2 is incomplete")
	}
}

func TestOutOfRangeIndexIsLocked(t *testing.T) {
	modules := buildCourse("content")
	if IsUnlocked(modules, -1, nil) || IsUnlocked(modules, 1, nil) {
		t.Fatalf("expected out-of-range indexes to report locked")
	}
}

func TestBuildOutlineSortsByOrder(t *testing.T) {
	modules := buildCourse("content", "content", "quiz")
	// shuffle the input
	shuffled := []courseModel.CourseModuleModel{modules[2], modules[0], modules[1]}

	completed := map[uuid.UUID]bool{modules[0].CourseModuleID: true}
	outline := BuildOutline(shuffled, completed)

	if len(outline) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(outline))
	}
	for i, s := range outline {
		if s.Module.CourseModuleOrder != i+1 {
			t.Fatalf("expected outline sorted by order, got order %d at index %d", s.Module.CourseModuleOrder, i)
		}
	}
	if !outline[0].Completed || !outline[0].Unlocked {
		t.Fatalf("expected module 1 completed and unlocked")
	}
	if !outline[1].Unlocked || outline[1].Completed {
		t.Fatalf("expected module 2 unlocked but not completed")
	}
	if outline[2].Unlocked {
		t.Fatalf("expected quiz locked while module 2 is incomplete")
	}
}
