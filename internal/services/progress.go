package services

import (
	"errors"
	"math"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/progress"
)

// ErrNodeNotFound means the node id is not in the catalog.
var ErrNodeNotFound = errors.New("node not found")

// runnerPassRatio is the interactive quiz runner's pass rule: at least
// ceil(total*0.6) correct answers. Distinct from the 70% submission-endpoint
// mark in QuizService.
const runnerPassRatio = 0.6

// QuizCompletion is the outcome of an interactive quiz run.
type QuizCompletion struct {
	Passed          bool                   `json:"passed"`
	ScorePercentage int                    `json:"scorePercentage"`
	XPGained        int                    `json:"xp_gained"`
	NewAchievements []progress.Achievement `json:"new_achievements"`
	Stats           progress.UserStats     `json:"stats"`
}

type SurveyResult struct {
	Recommendation RecommendationResponse `json:"recommendation"`
}

type ProgressService interface {
	Record() progress.UserRecord
	CompleteLesson(nodeID string) (progress.CompleteResult, error)
	// CompleteQuiz applies the runner's 60% pass rule, records the attempt
	// either way, and rewards XP only on a pass.
	CompleteQuiz(nodeID string, correct, total int) (QuizCompletion, error)
	SubmitSurvey(answers map[string]string) SurveyResult
	Reset()
}

type progressService struct {
	store *progress.Store
	cat   *catalog.Catalog
	rec   RecommendationService
	log   *logger.Logger
}

func NewProgressService(store *progress.Store, cat *catalog.Catalog, rec RecommendationService, baseLog *logger.Logger) ProgressService {
	return &progressService{
		store: store,
		cat:   cat,
		rec:   rec,
		log:   baseLog.With("service", "ProgressService"),
	}
}

func (ps *progressService) Record() progress.UserRecord {
	return ps.store.Load()
}

func (ps *progressService) CompleteLesson(nodeID string) (progress.CompleteResult, error) {
	if _, ok := ps.cat.NodeByID(nodeID); !ok {
		return progress.CompleteResult{}, ErrNodeNotFound
	}
	res := ps.store.CompleteNode(nodeID, false, 0)
	ps.log.Info("lesson completed", "node_id", nodeID, "xp_gained", res.XPGained)
	return res, nil
}

func (ps *progressService) CompleteQuiz(nodeID string, correct, total int) (QuizCompletion, error) {
	if _, ok := ps.cat.NodeByID(nodeID); !ok {
		return QuizCompletion{}, ErrNodeNotFound
	}
	if total <= 0 || correct < 0 || correct > total {
		return QuizCompletion{}, errors.New("invalid quiz result")
	}

	needed := int(math.Ceil(float64(total) * runnerPassRatio))
	passed := correct >= needed
	score := int(math.Round(float64(correct) / float64(total) * 100))

	out := QuizCompletion{
		Passed:          passed,
		ScorePercentage: score,
		NewAchievements: []progress.Achievement{},
	}

	if !passed {
		ps.store.AddQuizAttempt(nodeID, score, false)
		out.Stats = ps.store.Stats()
		return out, nil
	}

	res := ps.store.CompleteNode(nodeID, true, score)
	out.XPGained = res.XPGained
	out.NewAchievements = res.NewAchievements
	out.Stats = res.Stats
	ps.log.Info("quiz completed", "node_id", nodeID, "score", score, "xp_gained", res.XPGained)
	return out, nil
}

func (ps *progressService) SubmitSurvey(answers map[string]string) SurveyResult {
	ps.store.SaveSurveyAnswers(answers)
	rec := ps.rec.Recommend(answers)
	ps.store.SetRecommendedTrack(rec.TrackID)
	ps.log.Info("survey submitted", "recommended_track", rec.TrackID)
	return SurveyResult{Recommendation: rec}
}

func (ps *progressService) Reset() {
	ps.store.Reset()
	ps.log.Info("user record reset")
}
