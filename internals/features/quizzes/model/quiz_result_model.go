package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizResultModel is one graded attempt. Rows are append-only; the
// attempt history drives the eligibility state machine.
type QuizResultModel struct {
	QuizResultID uuid.UUID `gorm:"column:quiz_result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_result_id"`

	QuizResultUserID   uuid.UUID `gorm:"column:quiz_result_user_id;type:uuid;not null;uniqueIndex:uq_quiz_result_attempt,priority:1" json:"quiz_result_user_id"`
	QuizResultModuleID uuid.UUID `gorm:"column:quiz_result_module_id;type:uuid;not null;uniqueIndex:uq_quiz_result_attempt,priority:2" json:"quiz_result_module_id"`

	QuizResultScore  float64 `gorm:"column:quiz_result_score;type:numeric(5,2);not null" json:"quiz_result_score"`
	QuizResultPassed bool    `gorm:"column:quiz_result_passed;not null;default:false" json:"quiz_result_passed"`

	// 1-based, per (user, module). The unique index makes concurrent
	// submits collide here instead of both claiming the same number.
	QuizResultAttemptNumber int `gorm:"column:quiz_result_attempt_number;not null;uniqueIndex:uq_quiz_result_attempt,priority:3" json:"quiz_result_attempt_number"`

	// Set only on a failed attempt: completion time + 24h.
	QuizResultNextAttemptAvailable *time.Time `gorm:"column:quiz_result_next_attempt_available" json:"quiz_result_next_attempt_available,omitempty"`

	QuizResultCreatedAt time.Time `gorm:"column:quiz_result_created_at;autoCreateTime" json:"quiz_result_created_at"`
}

func (QuizResultModel) TableName() string {
	return "quiz_results"
}
