package progress

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/progress/blob"
)

const dayFormat = "2006-01-02"

// Store owns the persisted UserRecord and exposes its mutation operations.
// Every mutation is a single read-modify-write under the mutex, so concurrent
// HTTP handlers cannot lose updates.
type Store struct {
	blob blob.Store
	log  *logger.Logger
	now  func() time.Time

	mu sync.Mutex
}

func NewStore(b blob.Store, baseLog *logger.Logger) *Store {
	return &Store{
		blob: b,
		log:  baseLog.With("service", "ProgressStore"),
		now:  time.Now,
	}
}

// SetClock overrides the store's time source. Tests use this to simulate
// consecutive days and night hours.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Load returns the current record. A missing or unparseable blob yields the
// default record: losing progress is cheaper than taking the UI down.
func (s *Store) Load() UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() UserRecord {
	raw, err := s.blob.Load()
	if err != nil {
		if !errors.Is(err, blob.ErrNotFound) {
			s.log.Warn("load user record failed, using defaults", "error", err)
		}
		return DefaultRecord()
	}

	var rec UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.log.Warn("user record corrupted, using defaults", "error", err)
		return DefaultRecord()
	}

	// Pre-versioned blobs and partially filled records get their zero-value
	// collections restored.
	if rec.SchemaVersion == 0 {
		rec.SchemaVersion = SchemaVersion
	}
	if rec.Progress.CompletedNodes == nil {
		rec.Progress.CompletedNodes = []string{}
	}
	if rec.Progress.QuizAttempts == nil {
		rec.Progress.QuizAttempts = map[string][]QuizAttempt{}
	}
	if rec.Achievements == nil {
		rec.Achievements = []Achievement{}
	}
	return rec
}

func (s *Store) saveLocked(rec UserRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		s.log.Error("marshal user record failed", "error", err)
		return
	}
	if err := s.blob.Save(raw); err != nil {
		s.log.Error("save user record failed", "error", err)
	}
}

// Reset clears the persisted record back to defaults. Irreversible.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.blob.Delete(); err != nil {
		s.log.Error("reset user record failed", "error", err)
	}
}

// CompleteResult is what a completion event changed in this call.
type CompleteResult struct {
	XPGained        int           `json:"xp_gained"`
	NewAchievements []Achievement `json:"new_achievements"`
	Stats           UserStats     `json:"stats"`
}

// CompleteNode marks a node completed and applies the reward rules.
//
// XP, counters and quiz attempts are granted only on first completion of the
// node. Streak/date bookkeeping and the first-step and night-owl checks run
// on every call regardless of novelty; callers rely on that asymmetry.
func (s *Store) CompleteNode(nodeID string, isQuiz bool, quizScore int) CompleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	now := s.now()
	today := now.Format(dayFormat)

	xpGained := 0
	var newAchievements []Achievement

	if !rec.isCompleted(nodeID) {
		rec.Progress.CompletedNodes = append(rec.Progress.CompletedNodes, nodeID)

		if isQuiz {
			isPerfect := quizScore == 100
			if isPerfect {
				xpGained = XPQuizPerfect
			} else {
				xpGained = XPQuizPass
			}
			rec.Stats.TotalQuizzesPassed++

			rec.Progress.QuizAttempts[nodeID] = append(rec.Progress.QuizAttempts[nodeID], QuizAttempt{
				Score:       quizScore,
				Passed:      true,
				AttemptedAt: now,
			})

			if isPerfect {
				if a := s.unlockLocked(&rec, AchPerfectQuiz); a != nil {
					newAchievements = append(newAchievements, *a)
				}
			}
			if rec.Stats.TotalQuizzesPassed >= quizMasterThreshold {
				if a := s.unlockLocked(&rec, AchQuizMaster); a != nil {
					newAchievements = append(newAchievements, *a)
				}
			}
		} else {
			xpGained = XPLessonComplete
			rec.Stats.TotalLessonsCompleted++
		}
	}

	// Streak bookkeeping runs once per day, on the first completion event.
	lastDate := rec.Stats.LastActivityDate
	if lastDate != today {
		yesterday := now.AddDate(0, 0, -1).Format(dayFormat)

		if lastDate == yesterday {
			rec.Stats.Streak++
			xpGained += XPStreakBonus * rec.Stats.Streak
		} else {
			rec.Stats.Streak = 1
		}

		rec.Stats.LastActivityDate = today
		if rec.Stats.Streak > rec.Stats.LongestStreak {
			rec.Stats.LongestStreak = rec.Stats.Streak
		}

		if rec.Stats.Streak >= 7 {
			if a := s.unlockLocked(&rec, AchStreak7); a != nil {
				newAchievements = append(newAchievements, *a)
			}
		}
		if rec.Stats.Streak >= 30 {
			if a := s.unlockLocked(&rec, AchStreak30); a != nil {
				newAchievements = append(newAchievements, *a)
			}
		}
	}

	if len(rec.Progress.CompletedNodes) == 1 {
		if a := s.unlockLocked(&rec, AchFirstStep); a != nil {
			newAchievements = append(newAchievements, *a)
		}
	}

	// Night owl keys off the wall-clock hour of this call.
	if hour := now.Hour(); hour >= 0 && hour < 6 {
		if a := s.unlockLocked(&rec, AchNightOwl); a != nil {
			newAchievements = append(newAchievements, *a)
		}
	}

	rec.Stats.XP += xpGained
	rec.Stats.Level = CalculateLevel(rec.Stats.XP)

	s.saveLocked(rec)

	if newAchievements == nil {
		newAchievements = []Achievement{}
	}
	return CompleteResult{
		XPGained:        xpGained,
		NewAchievements: newAchievements,
		Stats:           rec.Stats,
	}
}

// unlockLocked appends the achievement to rec if it is known and not yet
// earned. Returns nil otherwise.
func (s *Store) unlockLocked(rec *UserRecord, id string) *Achievement {
	cfg, ok := achievementConfig(id)
	if !ok || rec.hasAchievement(id) {
		return nil
	}
	a := Achievement{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Description: cfg.Description,
		Icon:        cfg.Icon,
		EarnedAt:    s.now(),
	}
	rec.Achievements = append(rec.Achievements, a)
	return &a
}

// UnlockAchievement unlocks id if it is known and not yet earned. Idempotent;
// returns nil when nothing changed.
func (s *Store) UnlockAchievement(id string) *Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	a := s.unlockLocked(&rec, id)
	if a == nil {
		return nil
	}
	s.saveLocked(rec)
	return a
}

func (s *Store) SaveSurveyAnswers(answers map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	rec.SurveyAnswers = answers
	s.saveLocked(rec)
}

// SetRecommendedTrack records the onboarding result and makes it the active
// track.
func (s *Store) SetRecommendedTrack(trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	rec.RecommendedTrack = &trackID
	rec.Progress.CurrentTrackID = &trackID
	s.saveLocked(rec)
}

// AddQuizAttempt records an attempt even when it failed.
func (s *Store) AddQuizAttempt(nodeID string, score int, passed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	rec.Progress.QuizAttempts[nodeID] = append(rec.Progress.QuizAttempts[nodeID], QuizAttempt{
		Score:       score,
		Passed:      passed,
		AttemptedAt: s.now(),
	})
	s.saveLocked(rec)
}

func (s *Store) QuizHistory(nodeID string) []QuizAttempt {
	rec := s.Load()
	return rec.Progress.QuizAttempts[nodeID]
}

func (s *Store) IsNodeCompleted(nodeID string) bool {
	rec := s.Load()
	return rec.isCompleted(nodeID)
}

func (s *Store) CompletedNodes() []string {
	return s.Load().Progress.CompletedNodes
}

func (s *Store) Stats() UserStats {
	return s.Load().Stats
}

func (s *Store) Achievements() []Achievement {
	return s.Load().Achievements
}

func (s *Store) HasActivityToday() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.loadLocked()
	return rec.Stats.LastActivityDate == s.now().Format(dayFormat)
}
