package service

import (
	"errors"
	"testing"
	"time"

	"geocourse_backend/internals/features/quizzes/model"
)

func TestNextAttemptNumberEmptyHistory(t *testing.T) {
	if n := NextAttemptNumber(nil); n != 1 {
		t.Fatalf("expected attempt number 1 with no history, got %d", n)
	}
}

func TestNextAttemptNumberIsStrictlyIncreasing(t *testing.T) {
	results := []model.QuizResultModel{
		failedAttempt(1, t0, 40),
		failedAttempt(2, t0.Add(25*time.Hour), 60),
	}
	if n := NextAttemptNumber(results); n != 3 {
		t.Fatalf("expected attempt number 3 after two attempts, got %d", n)
	}
}

func TestNextAttemptNumberUnorderedHistory(t *testing.T) {
	results := []model.QuizResultModel{
		failedAttempt(2, t0.Add(25*time.Hour), 60),
		failedAttempt(1, t0, 40),
	}
	if n := NextAttemptNumber(results); n != 3 {
		t.Fatalf("expected attempt number 3 regardless of row order, got %d", n)
	}
}

func TestIsDuplicateAttempt(t *testing.T) {
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "uq_quiz_result_attempt" (SQLSTATE 23505)`)
	if !IsDuplicateAttempt(pgErr) {
		t.Fatalf("expected unique-constraint violation to be detected")
	}
	if IsDuplicateAttempt(errors.New("connection refused")) {
		t.Fatalf("expected unrelated error not to count as a duplicate attempt")
	}
	if IsDuplicateAttempt(nil) {
		t.Fatalf("expected nil error not to count as a duplicate attempt")
	}
}

// Two submits race with an empty history: both see attempt number 1, the
// unique index rejects one insert, and the loser's retry must see the
// winner's committed failure and land on the cooldown, not a second
// attempt number 1.
func TestLosingSubmitRetryHitsCooldown(t *testing.T) {
	if n := NextAttemptNumber(nil); n != 1 {
		t.Fatalf("expected both racers to claim attempt number 1, got %d", n)
	}

	winner := []model.QuizResultModel{failedAttempt(1, t0, 55)}

	d := EvaluateAttempts(winner, t0.Add(time.Second))
	if d.State != GateStateCooldownActive {
		t.Fatalf("expected loser's retry to be blocked by cooldown, got %s", d.State)
	}
	if n := NextAttemptNumber(winner); n != 2 {
		t.Fatalf("expected next attempt number 2 after the winner's row, got %d", n)
	}
}
