package service

import (
	"time"

	"geocourse_backend/internals/features/quizzes/model"
)

// Gating rules for quiz attempts.
const (
	PassThreshold   = 80.0
	RetryCooldown   = 24 * time.Hour
	DailyAttemptCap = 2
)

type GateState string

const (
	GateStateEligible          GateState = "ELIGIBLE"
	GateStatePassed            GateState = "PASSED"
	GateStateCooldownActive    GateState = "COOLDOWN_ACTIVE"
	GateStateDailyLimitReached GateState = "DAILY_LIMIT_REACHED"
)

// GateDecision is the outcome of evaluating a user's attempt history
// against the gating rules at a point in time.
type GateDecision struct {
	State         GateState  `json:"state"`
	AttemptsUsed  int        `json:"attempts_used"`
	AttemptsToday int        `json:"attempts_today"`
	BestScore     float64    `json:"best_score"`
	LastScore     *float64   `json:"last_score,omitempty"`
	PassedScore   *float64   `json:"passed_score,omitempty"`
	PassedAt      *time.Time `json:"passed_at,omitempty"`
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`
}

// CanAttempt reports whether the decision allows a new attempt now.
func (d GateDecision) CanAttempt() bool {
	return d.State == GateStateEligible
}

// EvaluateAttempts folds an attempt history into a gate decision.
//
// A pass is terminal: once passed, the user may never retake. With no
// attempts the user is eligible. Otherwise two independent blocks are
// checked, daily cap first: two attempts on the current UTC calendar
// day block until 24h after the first of them, and a failed last
// attempt blocks until its recorded retry time. Either alone denies
// eligibility; collapsing them into one check changes behavior.
func EvaluateAttempts(results []model.QuizResultModel, now time.Time) GateDecision {
	now = now.UTC()

	d := GateDecision{
		State:        GateStateEligible,
		AttemptsUsed: len(results),
	}

	var last, firstToday *model.QuizResultModel
	for i := range results {
		r := &results[i]
		if r.QuizResultPassed && d.PassedScore == nil {
			score, at := r.QuizResultScore, r.QuizResultCreatedAt
			d.PassedScore = &score
			d.PassedAt = &at
		}
		if r.QuizResultScore > d.BestScore {
			d.BestScore = r.QuizResultScore
		}
		if last == nil || r.QuizResultAttemptNumber > last.QuizResultAttemptNumber {
			last = r
		}
		if sameUTCDay(r.QuizResultCreatedAt, now) {
			d.AttemptsToday++
			if firstToday == nil || r.QuizResultCreatedAt.Before(firstToday.QuizResultCreatedAt) {
				firstToday = r
			}
		}
	}

	if d.PassedScore != nil {
		d.State = GateStatePassed
		return d
	}
	if last == nil {
		return d
	}

	score := last.QuizResultScore
	d.LastScore = &score

	if d.AttemptsToday >= DailyAttemptCap {
		if capEnd := firstToday.QuizResultCreatedAt.Add(RetryCooldown); now.Before(capEnd) {
			capEndUTC := capEnd.UTC()
			d.State = GateStateDailyLimitReached
			d.NextAttemptAt = &capEndUTC
			return d
		}
	}

	if next := last.QuizResultNextAttemptAvailable; next != nil && now.Before(*next) {
		nextUTC := next.UTC()
		d.State = GateStateCooldownActive
		d.NextAttemptAt = &nextUTC
		return d
	}

	return d
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
