package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/platform/logger"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load("", logger.NewNop())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func newTestQuizService(t *testing.T) QuizService {
	t.Helper()
	return NewQuizService(testCatalog(t), logger.NewNop(), rand.New(rand.NewSource(1)))
}

func TestQuizService_QuestionsForNodeReturnsAllQuestions(t *testing.T) {
	qs := newTestQuizService(t)

	questions := qs.QuestionsForNode("fe_u1_quiz")
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	seen := map[string]bool{}
	for _, q := range questions {
		seen[q.ID] = true
	}
	for _, id := range []string{"fe_q1", "fe_q2", "fe_q3", "fe_q4"} {
		if !seen[id] {
			t.Fatalf("missing question %s in %v", id, questions)
		}
	}
}

func TestQuizService_QuestionsForNodeUnknownNode(t *testing.T) {
	qs := newTestQuizService(t)
	if got := qs.QuestionsForNode("no_such_node"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestQuizService_SubmitPassAtSeventyPercent(t *testing.T) {
	qs := newTestQuizService(t)

	// 3 of 4 correct is 75%.
	res, err := qs.Submit("fe_u1_quiz", map[string]string{
		"fe_q1": "<nav>",
		"fe_q2": "padding",
		"fe_q3": "flexbox",
		"fe_q4": "wrong",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Passed {
		t.Fatalf("expected pass at 75%%, got %+v", res)
	}
	if res.ScorePercentage != 75 || res.Correct != 3 || res.Total != 4 {
		t.Fatalf("unexpected score: %+v", res)
	}
	if res.Score != "3/4" {
		t.Fatalf("expected score string 3/4, got %q", res.Score)
	}
}

func TestQuizService_SubmitFailBelowSeventyPercent(t *testing.T) {
	qs := newTestQuizService(t)

	// 3 of 5 correct is 60%, under the 70% mark.
	res, err := qs.Submit("be_u1_quiz", map[string]string{
		"be_q1": "POST",
		"be_q2": "Resource not found",
		"be_q3": "JOIN",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Passed {
		t.Fatalf("expected fail at 60%%, got %+v", res)
	}
	if res.ScorePercentage != 60 {
		t.Fatalf("expected 60%%, got %d", res.ScorePercentage)
	}
}

func TestQuizService_SubmitDetailsPerQuestion(t *testing.T) {
	qs := newTestQuizService(t)

	res, err := qs.Submit("fe_u1_quiz", map[string]string{"fe_q1": "<nav>"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(res.Details) != 4 {
		t.Fatalf("expected 4 details, got %d", len(res.Details))
	}
	byID := map[string]QuestionDetail{}
	for _, d := range res.Details {
		byID[d.QuestionID] = d
	}
	if d := byID["fe_q1"]; !d.Correct || d.UserAnswer != "<nav>" {
		t.Fatalf("fe_q1 detail wrong: %+v", d)
	}
	// Unanswered questions surface the correct answer with an empty user answer.
	if d := byID["fe_q2"]; d.Correct || d.UserAnswer != "" || d.CorrectAnswer != "padding" {
		t.Fatalf("fe_q2 detail wrong: %+v", d)
	}
}

func TestQuizService_SubmitUnknownNode(t *testing.T) {
	qs := newTestQuizService(t)

	_, err := qs.Submit("fe_html_intro", map[string]string{})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}
