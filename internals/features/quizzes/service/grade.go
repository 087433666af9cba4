package service

import (
	"strings"

	"github.com/google/uuid"

	"geocourse_backend/internals/features/quizzes/model"
)

// GradeResult is a scored submission before persistence.
type GradeResult struct {
	Score          float64
	CorrectCount   int
	TotalQuestions int
	Passed         bool
}

// Grade scores a set of answers against the question bank. Answers are
// option letters keyed by question ID; missing or unknown answers count
// as wrong. A quiz with no questions scores zero.
func Grade(questions []model.QuizQuestionModel, answers map[uuid.UUID]string) GradeResult {
	res := GradeResult{TotalQuestions: len(questions)}
	if len(questions) == 0 {
		return res
	}

	for _, q := range questions {
		given := strings.ToUpper(strings.TrimSpace(answers[q.QuizQuestionID]))
		if given != "" && given == strings.ToUpper(q.QuizQuestionCorrect) {
			res.CorrectCount++
		}
	}

	res.Score = 100 * float64(res.CorrectCount) / float64(res.TotalQuestions)
	res.Passed = res.Score >= PassThreshold
	return res
}
