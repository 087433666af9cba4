package service

import (
	"strings"

	"geocourse_backend/internals/features/quizzes/model"
)

// NextAttemptNumber returns the number a new attempt should claim given
// the history read so far. Numbers stay strictly increasing even if the
// history slice arrives unordered.
func NextAttemptNumber(results []model.QuizResultModel) int {
	next := 1
	for _, r := range results {
		if r.QuizResultAttemptNumber >= next {
			next = r.QuizResultAttemptNumber + 1
		}
	}
	return next
}

// IsDuplicateAttempt reports whether err is the unique-constraint
// violation raised when two submissions race for the same attempt
// number. The losing transaction is retried so it re-reads the winner's
// row before re-checking the gate.
func IsDuplicateAttempt(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
