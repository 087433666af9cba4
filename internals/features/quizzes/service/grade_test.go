package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"geocourse_backend/internals/features/quizzes/model"
)

func question(correct string) model.QuizQuestionModel {
	return model.QuizQuestionModel{
		QuizQuestionID:      uuid.New(),
		QuizQuestionText:    "q",
		QuizQuestionOptions: pq.StringArray{"one", "two", "three", "four"},
		QuizQuestionCorrect: correct,
	}
}

func TestGradeAllCorrect(t *testing.T) {
	questions := []model.QuizQuestionModel{question("A"), question("B"), question("C")}
	answers := map[uuid.UUID]string{
		questions[0].QuizQuestionID: "A",
		questions[1].QuizQuestionID: "B",
		questions[2].QuizQuestionID: "C",
	}

	res := Grade(questions, answers)
	if res.Score != 100 || !res.Passed || res.CorrectCount != 3 {
		t.Fatalf("expected a perfect pass, got %+v", res)
	}
}

func TestGradeExactThresholdPasses(t *testing.T) {
	questions := []model.QuizQuestionModel{
		question("A"), question("A"), question("A"), question("A"), question("A"),
	}
	answers := map[uuid.UUID]string{
		questions[0].QuizQuestionID: "A",
		questions[1].QuizQuestionID: "A",
		questions[2].QuizQuestionID: "A",
		questions[3].QuizQuestionID: "A",
		questions[4].QuizQuestionID: "B",
	}

	// 4/5 = exactly 80.0
	res := Grade(questions, answers)
	if res.Score != 80 {
		t.Fatalf("expected score 80, got %v", res.Score)
	}
	if !res.Passed {
		t.Fatalf("expected exactly 80%% to pass")
	}
}

func TestGradeJustBelowThresholdFails(t *testing.T) {
	questions := []model.QuizQuestionModel{
		question("A"), question("A"), question("A"), question("A"),
	}
	answers := map[uuid.UUID]string{
		questions[0].QuizQuestionID: "A",
		questions[1].QuizQuestionID: "A",
		questions[2].QuizQuestionID: "A",
	}

	// 3/4 = 75
	res := Grade(questions, answers)
	if res.Score != 75 || res.Passed {
		t.Fatalf("expected a failing 75, got %+v", res)
	}
}

func TestGradeMissingAndUnknownAnswersCountWrong(t *testing.T) {
	questions := []model.QuizQuestionModel{question("A"), question("B")}
	answers := map[uuid.UUID]string{
		questions[0].QuizQuestionID: "Z",
		// second question unanswered
	}

	res := Grade(questions, answers)
	if res.CorrectCount != 0 || res.Score != 0 {
		t.Fatalf("expected zero correct, got %+v", res)
	}
}

func TestGradeNormalizesAnswerCase(t *testing.T) {
	questions := []model.QuizQuestionModel{question("A")}
	answers := map[uuid.UUID]string{questions[0].QuizQuestionID: " a "}

	res := Grade(questions, answers)
	if res.CorrectCount != 1 {
		t.Fatalf("expected lowercase answer to match, got %+v", res)
	}
}

func TestGradeEmptyQuestionBank(t *testing.T) {
	res := Grade(nil, map[uuid.UUID]string{})
	if res.Score != 0 || res.Passed || res.TotalQuestions != 0 {
		t.Fatalf("expected zeroed result for an empty bank, got %+v", res)
	}
}
