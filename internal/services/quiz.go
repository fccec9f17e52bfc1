package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/platform/logger"
)

// ErrQuizNotFound means no questions exist for the node.
var ErrQuizNotFound = errors.New("quiz not found")

// submitPassPercentage is the pass mark of the submission endpoint. The
// interactive runner flow in ProgressService uses its own 60% rule; the two
// thresholds are intentionally kept separate per call site.
const submitPassPercentage = 70

type QuestionDetail struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

type SubmitResult struct {
	Passed          bool             `json:"passed"`
	Score           string           `json:"score"` // "correct/total"
	ScorePercentage int              `json:"scorePercentage"`
	Correct         int              `json:"correct"`
	Total           int              `json:"total"`
	Details         []QuestionDetail `json:"details"`
	Message         string           `json:"message"`
}

type QuizService interface {
	// QuestionsForNode returns the node's questions in uniformly random
	// order, or nil when the node has no quiz.
	QuestionsForNode(nodeID string) []catalog.Question
	Submit(nodeID string, answers map[string]string) (SubmitResult, error)
}

type quizService struct {
	cat *catalog.Catalog
	log *logger.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewQuizService(cat *catalog.Catalog, baseLog *logger.Logger, rng *rand.Rand) QuizService {
	return &quizService{
		cat: cat,
		log: baseLog.With("service", "QuizService"),
		rng: rng,
	}
}

func (qs *quizService) QuestionsForNode(nodeID string) []catalog.Question {
	questions := qs.cat.QuestionsForNode(nodeID)
	if len(questions) == 0 {
		return nil
	}

	qs.rngMu.Lock()
	qs.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	qs.rngMu.Unlock()

	return questions
}

func (qs *quizService) Submit(nodeID string, answers map[string]string) (SubmitResult, error) {
	questions := qs.cat.QuestionsForNode(nodeID)
	if len(questions) == 0 {
		return SubmitResult{}, ErrQuizNotFound
	}

	correct := 0
	total := len(questions)
	details := make([]QuestionDetail, 0, total)

	for _, q := range questions {
		userAnswer := answers[q.ID]
		isCorrect := userAnswer == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		details = append(details, QuestionDetail{
			QuestionID:    q.ID,
			Correct:       isCorrect,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	scorePercentage := int(math.Round(float64(correct) / float64(total) * 100))
	passed := scorePercentage >= submitPassPercentage

	message := "Sorry, you did not pass. Try again!"
	if passed {
		message = "Congratulations! You passed the quiz."
	}

	return SubmitResult{
		Passed:          passed,
		Score:           fmt.Sprintf("%d/%d", correct, total),
		ScorePercentage: scorePercentage,
		Correct:         correct,
		Total:           total,
		Details:         details,
		Message:         message,
	}, nil
}
