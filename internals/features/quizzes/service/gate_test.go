package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"geocourse_backend/internals/features/quizzes/model"
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func failedAttempt(n int, at time.Time, score float64) model.QuizResultModel {
	next := at.Add(RetryCooldown)
	return model.QuizResultModel{
		QuizResultID:                   uuid.New(),
		QuizResultScore:                score,
		QuizResultPassed:               false,
		QuizResultAttemptNumber:        n,
		QuizResultNextAttemptAvailable: &next,
		QuizResultCreatedAt:            at,
	}
}

func passedAttempt(n int, at time.Time, score float64) model.QuizResultModel {
	return model.QuizResultModel{
		QuizResultID:            uuid.New(),
		QuizResultScore:         score,
		QuizResultPassed:        true,
		QuizResultAttemptNumber: n,
		QuizResultCreatedAt:     at,
	}
}

func TestNoAttemptsIsEligible(t *testing.T) {
	d := EvaluateAttempts(nil, t0)
	if d.State != GateStateEligible {
		t.Fatalf("expected ELIGIBLE with no attempts, got %s", d.State)
	}
	if d.AttemptsUsed != 0 || d.NextAttemptAt != nil {
		t.Fatalf("expected empty decision, got %+v", d)
	}
}

func TestPassedIsTerminal(t *testing.T) {
	results := []model.QuizResultModel{
		failedAttempt(1, t0, 60),
		passedAttempt(2, t0.Add(25*time.Hour), 90),
	}

	// even a much later failed-looking history cannot reopen the gate
	d := EvaluateAttempts(results, t0.Add(1000*time.Hour))
	if d.State != GateStatePassed {
		t.Fatalf("expected PASSED to be terminal, got %s", d.State)
	}
	if d.PassedScore == nil || *d.PassedScore != 90 {
		t.Fatalf("expected passing score 90 carried in decision, got %+v", d.PassedScore)
	}
	if d.NextAttemptAt != nil {
		t.Fatalf("expected no retry time once passed")
	}
}

func TestCooldownAfterSingleFailure(t *testing.T) {
	results := []model.QuizResultModel{failedAttempt(1, t0, 60)}

	d := EvaluateAttempts(results, t0.Add(1*time.Hour))
	if d.State != GateStateCooldownActive {
		t.Fatalf("expected COOLDOWN_ACTIVE one hour after a failure, got %s", d.State)
	}
	if d.NextAttemptAt == nil || !d.NextAttemptAt.Equal(t0.Add(RetryCooldown)) {
		t.Fatalf("expected next attempt at t0+24h, got %v", d.NextAttemptAt)
	}

	d = EvaluateAttempts(results, t0.Add(25*time.Hour))
	if d.State != GateStateEligible {
		t.Fatalf("expected ELIGIBLE 25 hours after a failure, got %s", d.State)
	}
}

func TestCooldownBoundaryIsExclusive(t *testing.T) {
	results := []model.QuizResultModel{failedAttempt(1, t0, 60)}

	// exactly at t0+24h the cooldown has elapsed
	d := EvaluateAttempts(results, t0.Add(RetryCooldown))
	if d.State != GateStateEligible {
		t.Fatalf("expected ELIGIBLE exactly at the cooldown boundary, got %s", d.State)
	}
}

func TestDailyCapBlocksThirdAttempt(t *testing.T) {
	results := []model.QuizResultModel{
		failedAttempt(1, t0, 40),
		failedAttempt(2, t0.Add(1*time.Hour), 60),
	}

	d := EvaluateAttempts(results, t0.Add(2*time.Hour))
	if d.State != GateStateDailyLimitReached {
		t.Fatalf("expected DAILY_LIMIT_REACHED after two attempts today, got %s", d.State)
	}
	// the cap is measured from the first attempt of the day
	if d.NextAttemptAt == nil || !d.NextAttemptAt.Equal(t0.Add(RetryCooldown)) {
		t.Fatalf("expected next attempt at t0+24h, got %v", d.NextAttemptAt)
	}
	if d.AttemptsToday != 2 {
		t.Fatalf("expected 2 attempts today, got %d", d.AttemptsToday)
	}
}

func TestDailyCapHasPrecedenceOverCooldown(t *testing.T) {
	// last attempt's cooldown would end at t0+25h, but the cap window
	// from the first attempt ends earlier at t0+24h and reports first
	results := []model.QuizResultModel{
		failedAttempt(1, t0, 40),
		failedAttempt(2, t0.Add(1*time.Hour), 60),
	}

	d := EvaluateAttempts(results, t0.Add(2*time.Hour))
	if d.State != GateStateDailyLimitReached {
		t.Fatalf("expected the daily cap to report before the cooldown, got %s", d.State)
	}
	if d.NextAttemptAt == nil || !d.NextAttemptAt.Equal(t0.Add(24*time.Hour)) {
		t.Fatalf("expected cap window end t0+24h, got %v", d.NextAttemptAt)
	}
}

func TestCapWindowElapsedIsEligible(t *testing.T) {
	results := []model.QuizResultModel{
		failedAttempt(1, t0, 40),
		failedAttempt(2, t0.Add(1*time.Hour), 60),
	}

	// t0+25h is a new calendar day and past both cooldowns
	d := EvaluateAttempts(results, t0.Add(25*time.Hour))
	if d.State != GateStateEligible {
		t.Fatalf("expected ELIGIBLE once the cap window elapsed, got %s", d.State)
	}
}

func TestCalendarDayBoundaryResetsCap(t *testing.T) {
	// two failures late in the day
	lateT0 := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	results := []model.QuizResultModel{
		failedAttempt(1, lateT0, 40),
		failedAttempt(2, lateT0.Add(1*time.Hour), 60),
	}

	// shortly after UTC midnight the cap no longer counts yesterday's
	// attempts, but the last failure's cooldown still blocks
	now := time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC)
	d := EvaluateAttempts(results, now)
	if d.State != GateStateCooldownActive {
		t.Fatalf("expected COOLDOWN_ACTIVE across the day boundary, got %s", d.State)
	}
	if d.AttemptsToday != 0 {
		t.Fatalf("expected 0 attempts on the new day, got %d", d.AttemptsToday)
	}
	if d.NextAttemptAt == nil || !d.NextAttemptAt.Equal(lateT0.Add(1*time.Hour).Add(RetryCooldown)) {
		t.Fatalf("expected next attempt from the last failure's cooldown, got %v", d.NextAttemptAt)
	}
}

func TestDecisionCarriesScores(t *testing.T) {
	results := []model.QuizResultModel{
		failedAttempt(1, t0, 40),
		failedAttempt(2, t0.Add(26*time.Hour), 73.33),
	}

	d := EvaluateAttempts(results, t0.Add(60*time.Hour))
	if d.BestScore != 73.33 {
		t.Fatalf("expected best score 73.33, got %v", d.BestScore)
	}
	if d.LastScore == nil || *d.LastScore != 73.33 {
		t.Fatalf("expected last score 73.33, got %v", d.LastScore)
	}
	if d.AttemptsUsed != 2 {
		t.Fatalf("expected 2 attempts used, got %d", d.AttemptsUsed)
	}
}

func TestCanAttempt(t *testing.T) {
	if !(GateDecision{State: GateStateEligible}).CanAttempt() {
		t.Fatalf("expected ELIGIBLE to allow an attempt")
	}
	for _, s := range []GateState{GateStatePassed, GateStateCooldownActive, GateStateDailyLimitReached} {
		if (GateDecision{State: s}).CanAttempt() {
			t.Fatalf("expected %s to deny an attempt", s)
		}
	}
}
