package progress

// XP rewards per completion event. Streak bonus is per day and scales with the
// new streak value.
const (
	XPLessonComplete = 10
	XPQuizPass       = 25
	XPQuizPerfect    = 40
	XPUnitComplete   = 50
	XPBossLevel      = 100
	XPStreakBonus    = 5
)

type LevelThreshold struct {
	Level int    `json:"level"`
	MinXP int    `json:"minXP"`
	Title string `json:"title"`
}

// LevelThresholds is the fixed ascending level table. Level is always derived
// from XP through this table, never stored authoritatively.
var LevelThresholds = []LevelThreshold{
	{Level: 1, MinXP: 0, Title: "Novice"},
	{Level: 2, MinXP: 100, Title: "Apprentice"},
	{Level: 3, MinXP: 300, Title: "Journeyman"},
	{Level: 4, MinXP: 600, Title: "Expert"},
	{Level: 5, MinXP: 1000, Title: "Master"},
	{Level: 6, MinXP: 1500, Title: "Guru"},
	{Level: 7, MinXP: 2500, Title: "Legend"},
}

// CalculateLevel returns the highest level whose minimum XP is <= xp.
func CalculateLevel(xp int) int {
	for i := len(LevelThresholds) - 1; i >= 0; i-- {
		if xp >= LevelThresholds[i].MinXP {
			return LevelThresholds[i].Level
		}
	}
	return 1
}

// LevelInfo returns the threshold entry for a level, falling back to the
// first entry for out-of-range input.
func LevelInfo(level int) LevelThreshold {
	for _, t := range LevelThresholds {
		if t.Level == level {
			return t
		}
	}
	return LevelThresholds[0]
}

type LevelProgress struct {
	Current  int     `json:"current"`  // XP earned within the current band
	Needed   int     `json:"needed"`   // XP required to cross into the next band
	Progress float64 `json:"progress"` // percentage in [0,100]
}

// XPForNextLevel reports progress through the current level band. At max
// level it returns 100% with needed == current.
func XPForNextLevel(currentXP int) LevelProgress {
	currentLevel := CalculateLevel(currentXP)

	var next *LevelThreshold
	for i := range LevelThresholds {
		if LevelThresholds[i].Level == currentLevel+1 {
			next = &LevelThresholds[i]
			break
		}
	}
	if next == nil {
		return LevelProgress{Current: currentXP, Needed: currentXP, Progress: 100}
	}

	base := LevelInfo(currentLevel).MinXP
	needed := next.MinXP - base
	earned := currentXP - base

	pct := float64(earned) / float64(needed) * 100
	if pct > 100 {
		pct = 100
	}
	return LevelProgress{Current: earned, Needed: needed, Progress: pct}
}
