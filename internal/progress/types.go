package progress

import "time"

// SchemaVersion is written into every persisted record. Older records carry
// no version field; they load as version 1.
const SchemaVersion = 1

type QuizAttempt struct {
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

type UserProgress struct {
	CompletedNodes []string                 `json:"completedNodes"`
	CurrentTrackID *string                  `json:"currentTrackId"`
	QuizAttempts   map[string][]QuizAttempt `json:"quizAttempts"`
}

type UserStats struct {
	XP                    int    `json:"xp"`
	Level                 int    `json:"level"`
	Streak                int    `json:"streak"`
	LongestStreak         int    `json:"longestStreak"`
	LastActivityDate      string `json:"lastActivityDate"` // YYYY-MM-DD, empty until first activity
	TotalLessonsCompleted int    `json:"totalLessonsCompleted"`
	TotalQuizzesPassed    int    `json:"totalQuizzesPassed"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// UserRecord is the single persisted aggregate. All mutations round-trip
// through load → mutate → save on the owning Store.
type UserRecord struct {
	SchemaVersion    int               `json:"schema_version"`
	Progress         UserProgress      `json:"progress"`
	Stats            UserStats         `json:"stats"`
	Achievements     []Achievement     `json:"achievements"`
	SurveyAnswers    map[string]string `json:"surveyAnswers"`
	RecommendedTrack *string           `json:"recommendedTrack"`
}

func DefaultRecord() UserRecord {
	return UserRecord{
		SchemaVersion: SchemaVersion,
		Progress: UserProgress{
			CompletedNodes: []string{},
			QuizAttempts:   map[string][]QuizAttempt{},
		},
		Stats: UserStats{
			Level: 1,
		},
		Achievements: []Achievement{},
	}
}

func (r *UserRecord) hasAchievement(id string) bool {
	for _, a := range r.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (r *UserRecord) isCompleted(nodeID string) bool {
	for _, id := range r.Progress.CompletedNodes {
		if id == nodeID {
			return true
		}
	}
	return false
}
