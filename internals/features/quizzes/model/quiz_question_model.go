package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// QuizQuestionModel is a multiple-choice question attached to a quiz
// module. Options are stored positionally; the correct answer is the
// option letter (A, B, C, D).
type QuizQuestionModel struct {
	QuizQuestionID uuid.UUID `gorm:"column:quiz_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_question_id"`

	QuizQuestionModuleID uuid.UUID `gorm:"column:quiz_question_module_id;type:uuid;not null;index" json:"quiz_question_module_id"`

	QuizQuestionText    string         `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`
	QuizQuestionOptions pq.StringArray `gorm:"column:quiz_question_options;type:text[];not null" json:"quiz_question_options"`

	// Option letter, A through D.
	QuizQuestionCorrect string `gorm:"column:quiz_question_correct;type:varchar(1);not null" json:"-"`

	QuizQuestionOrder int `gorm:"column:quiz_question_order;not null;default:0" json:"quiz_question_order"`

	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time `gorm:"column:quiz_question_updated_at;autoUpdateTime" json:"quiz_question_updated_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
