package progress

// Achievement identifiers.
const (
	AchFirstStep     = "first_step"
	AchFastLearner   = "fast_learner"
	AchPerfectQuiz   = "perfect_quiz"
	AchStreak7       = "streak_7"
	AchStreak30      = "streak_30"
	AchTrackComplete = "track_complete"
	AchQuizMaster    = "quiz_master"
	AchNightOwl      = "night_owl"
)

// quizMasterThreshold is the cumulative quiz-pass count that unlocks
// quiz_master.
const quizMasterThreshold = 10

type AchievementConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var AchievementsConfig = []AchievementConfig{
	{ID: AchFirstStep, Name: "First Step", Description: "Complete your first lesson", Icon: "🎯"},
	{ID: AchFastLearner, Name: "Fast Learner", Description: "Complete 5 lessons in one day", Icon: "⚡"},
	{ID: AchPerfectQuiz, Name: "Flawless", Description: "Finish a quiz with a perfect score", Icon: "💯"},
	{ID: AchStreak7, Name: "Consistent", Description: "Keep a 7 day streak", Icon: "🔥"},
	{ID: AchStreak30, Name: "Determined", Description: "Keep a 30 day streak", Icon: "🏆"},
	{ID: AchTrackComplete, Name: "Specialist", Description: "Finish an entire track", Icon: "🎓"},
	{ID: AchQuizMaster, Name: "Quiz Master", Description: "Pass 10 quizzes", Icon: "📝"},
	{ID: AchNightOwl, Name: "Night Owl", Description: "Complete a lesson after midnight", Icon: "🦉"},
}

func achievementConfig(id string) (AchievementConfig, bool) {
	for _, c := range AchievementsConfig {
		if c.ID == id {
			return c, true
		}
	}
	return AchievementConfig{}, false
}
