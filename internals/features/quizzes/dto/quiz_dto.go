package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"geocourse_backend/internals/features/quizzes/model"
)

/* =============================
   Requests
============================= */

type SubmitQuizRequest struct {
	// Option letter keyed by question ID.
	Answers map[uuid.UUID]string `json:"answers" validate:"required"`
}

type CreateQuizQuestionRequest struct {
	QuizQuestionText    string   `json:"quiz_question_text" validate:"required,min=3"`
	QuizQuestionOptions []string `json:"quiz_question_options" validate:"required,min=3,max=4,dive,required"`
	QuizQuestionCorrect string   `json:"quiz_question_correct" validate:"required,oneof=A B C D"`
	QuizQuestionOrder   int      `json:"quiz_question_order" validate:"gte=0"`
}

type UpdateQuizQuestionRequest struct {
	QuizQuestionText    *string  `json:"quiz_question_text" validate:"omitempty,min=3"`
	QuizQuestionOptions []string `json:"quiz_question_options" validate:"omitempty,min=3,max=4,dive,required"`
	QuizQuestionCorrect *string  `json:"quiz_question_correct" validate:"omitempty,oneof=A B C D"`
	QuizQuestionOrder   *int     `json:"quiz_question_order" validate:"omitempty,gte=0"`
}

/* =============================
   Responses
============================= */

// QuizQuestionDTO is the learner-facing view: no correct answer.
type QuizQuestionDTO struct {
	QuizQuestionID      uuid.UUID      `json:"quiz_question_id"`
	QuizQuestionText    string         `json:"quiz_question_text"`
	QuizQuestionOptions pq.StringArray `json:"quiz_question_options"`
	QuizQuestionOrder   int            `json:"quiz_question_order"`
}

// QuizQuestionAdminDTO includes the answer key.
type QuizQuestionAdminDTO struct {
	QuizQuestionDTO
	QuizQuestionModuleID uuid.UUID `json:"quiz_question_module_id"`
	QuizQuestionCorrect  string    `json:"quiz_question_correct"`
}

type QuizResultDTO struct {
	QuizResultID                   uuid.UUID  `json:"quiz_result_id"`
	QuizResultUserID               uuid.UUID  `json:"quiz_result_user_id"`
	QuizResultModuleID             uuid.UUID  `json:"quiz_result_module_id"`
	QuizResultScore                float64    `json:"quiz_result_score"`
	QuizResultPassed               bool       `json:"quiz_result_passed"`
	QuizResultAttemptNumber        int        `json:"quiz_result_attempt_number"`
	QuizResultNextAttemptAvailable *time.Time `json:"quiz_result_next_attempt_available,omitempty"`
	QuizResultCreatedAt            time.Time  `json:"quiz_result_created_at"`
}

func ToQuizQuestionDTO(m model.QuizQuestionModel) QuizQuestionDTO {
	return QuizQuestionDTO{
		QuizQuestionID:      m.QuizQuestionID,
		QuizQuestionText:    m.QuizQuestionText,
		QuizQuestionOptions: m.QuizQuestionOptions,
		QuizQuestionOrder:   m.QuizQuestionOrder,
	}
}

func ToQuizQuestionAdminDTO(m model.QuizQuestionModel) QuizQuestionAdminDTO {
	return QuizQuestionAdminDTO{
		QuizQuestionDTO:      ToQuizQuestionDTO(m),
		QuizQuestionModuleID: m.QuizQuestionModuleID,
		QuizQuestionCorrect:  m.QuizQuestionCorrect,
	}
}

func ToQuizResultDTO(m model.QuizResultModel) QuizResultDTO {
	return QuizResultDTO{
		QuizResultID:                   m.QuizResultID,
		QuizResultUserID:               m.QuizResultUserID,
		QuizResultModuleID:             m.QuizResultModuleID,
		QuizResultScore:                m.QuizResultScore,
		QuizResultPassed:               m.QuizResultPassed,
		QuizResultAttemptNumber:        m.QuizResultAttemptNumber,
		QuizResultNextAttemptAvailable: m.QuizResultNextAttemptAvailable,
		QuizResultCreatedAt:            m.QuizResultCreatedAt,
	}
}
