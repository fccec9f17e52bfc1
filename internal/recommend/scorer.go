package recommend

import (
	"math"
	"sort"
)

// Track identifiers known to the scorer. Must match the catalog track ids.
const (
	TrackFrontend      = "frontend_developer"
	TrackBackend       = "backend_developer"
	TrackFullstack     = "fullstack_developer"
	TrackMobileIOS     = "mobile_ios_developer"
	TrackMobileAndroid = "mobile_android_developer"
	TrackMobileCross   = "mobile_cross_developer"
	TrackGame          = "game_developer"
	TrackCyber         = "cybersecurity"
	TrackDevOps        = "devops_engineer"
	TrackDataScience   = "data_scientist"
	TrackML            = "ml_engineer"
	TrackDatabase      = "database_admin"
	TrackUIUX          = "ui_ux_designer"
	TrackBlockchain    = "blockchain_developer"
)

// categoryOrder fixes the tie-break: equal scores keep declaration order.
var categoryOrder = []string{
	TrackFrontend,
	TrackBackend,
	TrackFullstack,
	TrackMobileIOS,
	TrackMobileAndroid,
	TrackMobileCross,
	TrackGame,
	TrackCyber,
	TrackDevOps,
	TrackDataScience,
	TrackML,
	TrackDatabase,
	TrackUIUX,
	TrackBlockchain,
}

type ScoredTrack struct {
	TrackID    string   `json:"track_id"`
	Score      int      `json:"score"`
	Percentage int      `json:"match_percentage"`
	Reasons    []string `json:"reasons"`
}

type Recommendation struct {
	Primary      ScoredTrack   `json:"primary"`
	Alternatives []ScoredTrack `json:"alternatives"`
}

// DefaultTrackID is the fallback when nothing scored or the input was
// malformed.
const DefaultTrackID = TrackFrontend

const defaultPercentage = 50

var defaultReasons = []string{"Default recommendation"}

type scoreState struct {
	score   int
	reasons []string
}

func addScore(scores map[string]*scoreState, trackID string, points int, reason string) {
	s, ok := scores[trackID]
	if !ok {
		return
	}
	s.score += points
	for _, r := range s.reasons {
		if r == reason {
			return
		}
	}
	s.reasons = append(s.reasons, reason)
}

// Recommend maps survey answers to a ranked recommendation. Unrecognized keys
// and values are ignored. exists filters to categories present in the catalog;
// a nil exists keeps every category. The function never fails: with no
// positive score it falls back to the default category at 50%.
func Recommend(answers map[string]string, exists func(trackID string) bool) Recommendation {
	scores := make(map[string]*scoreState, len(categoryOrder))
	for _, id := range categoryOrder {
		scores[id] = &scoreState{}
	}

	// Platform preference. Two key spellings are accepted, the survey was
	// renamed at some point.
	platform := answers["platform_preference"]
	if platform == "" {
		platform = answers["platform"]
	}
	switch platform {
	case "web":
		addScore(scores, TrackFrontend, 30, "Prefers the web platform")
		addScore(scores, TrackBackend, 25, "Prefers the web platform")
		addScore(scores, TrackFullstack, 35, "Prefers the web platform")
	case "mobile":
		addScore(scores, TrackMobileIOS, 30, "Prefers the mobile platform")
		addScore(scores, TrackMobileAndroid, 30, "Prefers the mobile platform")
		addScore(scores, TrackMobileCross, 35, "Prefers the mobile platform")
	case "game":
		addScore(scores, TrackGame, 50, "Prefers the game platform")
	case "backend", "cloud":
		addScore(scores, TrackBackend, 30, "Prefers backend and cloud work")
		addScore(scores, TrackDevOps, 35, "Prefers backend and cloud work")
		addScore(scores, TrackDatabase, 25, "Prefers backend and cloud work")
	}

	// Interest area.
	interest := answers["interest_area"]
	if interest == "" {
		interest = answers["interest_core"]
	}
	switch interest {
	case "visual":
		addScore(scores, TrackFrontend, 25, "Interested in visual design")
		addScore(scores, TrackUIUX, 40, "Interested in visual design")
		addScore(scores, TrackGame, 20, "Interested in visual design")
	case "logic":
		addScore(scores, TrackBackend, 25, "Enjoys logical problem solving")
		addScore(scores, TrackDataScience, 30, "Enjoys logical problem solving")
		addScore(scores, TrackML, 30, "Enjoys logical problem solving")
	case "data":
		addScore(scores, TrackDataScience, 40, "Interested in data analysis")
		addScore(scores, TrackML, 35, "Interested in data analysis")
		addScore(scores, TrackDatabase, 30, "Interested in data analysis")
	case "security":
		addScore(scores, TrackCyber, 50, "Interested in security")
		addScore(scores, TrackDevOps, 20, "Interested in security")
	case "infrastructure":
		addScore(scores, TrackDevOps, 40, "Interested in infrastructure")
		addScore(scores, TrackBackend, 25, "Interested in infrastructure")
	}

	switch answers["work_style"] {
	case "frontend":
		addScore(scores, TrackFrontend, 20, "Prefers frontend work")
		addScore(scores, TrackUIUX, 15, "Prefers frontend work")
	case "backend":
		addScore(scores, TrackBackend, 20, "Prefers backend work")
		addScore(scores, TrackDatabase, 15, "Prefers backend work")
	case "fullstack":
		addScore(scores, TrackFullstack, 25, "Prefers full-stack work")
	case "solo":
		addScore(scores, TrackFrontend, 10, "Prefers independent work")
		addScore(scores, TrackUIUX, 10, "Prefers independent work")
	}

	switch answers["experience_level"] {
	case "beginner":
		addScore(scores, TrackFrontend, 15, "Good starting point for beginners")
		addScore(scores, TrackUIUX, 10, "Good starting point for beginners")
	case "advanced":
		addScore(scores, TrackML, 15, "Advanced specialization")
		addScore(scores, TrackBlockchain, 15, "Advanced specialization")
		addScore(scores, TrackCyber, 15, "Advanced specialization")
	}

	switch answers["problem_solving"] {
	case "analytical":
		addScore(scores, TrackDataScience, 15, "Analytical approach")
		addScore(scores, TrackBackend, 10, "Analytical approach")
	case "creative":
		addScore(scores, TrackUIUX, 15, "Creative approach")
		addScore(scores, TrackGame, 15, "Creative approach")
	}

	switch answers["tech_interest"] {
	case "ai_ml":
		addScore(scores, TrackML, 30, "Interested in AI and ML")
		addScore(scores, TrackDataScience, 25, "Interested in AI and ML")
	case "blockchain":
		addScore(scores, TrackBlockchain, 40, "Interested in blockchain")
	case "cloud":
		addScore(scores, TrackDevOps, 30, "Interested in cloud technology")
	}

	ranked := make([]ScoredTrack, 0, len(categoryOrder))
	for _, id := range categoryOrder {
		if exists != nil && !exists(id) {
			continue
		}
		st := scores[id]
		reasons := st.reasons
		if reasons == nil {
			reasons = []string{}
		}
		ranked = append(ranked, ScoredTrack{
			TrackID:    id,
			Score:      st.score,
			Percentage: matchPercentage(st.score),
			Reasons:    reasons,
		})
	}

	// Stable sort keeps declaration order as the tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) == 0 || ranked[0].Score <= 0 {
		return Recommendation{
			Primary: ScoredTrack{
				TrackID:    DefaultTrackID,
				Score:      0,
				Percentage: defaultPercentage,
				Reasons:    defaultReasons,
			},
			Alternatives: []ScoredTrack{},
		}
	}

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}
	return Recommendation{
		Primary:      top[0],
		Alternatives: top[1:],
	}
}

// matchPercentage maps a raw score onto a saturating 0-100 display scale.
// Scores above 100 all display as 100.
func matchPercentage(score int) int {
	pct := int(math.Round(float64(score) / 100 * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
