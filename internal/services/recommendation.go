package services

import (
	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/recommend"
)

type Alternative struct {
	TrackID         string   `json:"track_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Score           int      `json:"score"`
	Reasons         []string `json:"reasons"`
	MatchPercentage int      `json:"match_percentage"`
}

// RecommendationResponse is the /recommend wire shape: one primary track plus
// up to two alternatives.
type RecommendationResponse struct {
	TrackID         string        `json:"track_id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	MatchPercentage int           `json:"match_percentage"`
	Reasons         []string      `json:"reasons"`
	Alternatives    []Alternative `json:"alternatives"`
}

type RecommendationService interface {
	// Recommend never fails: malformed answers fall through to the default
	// recommendation.
	Recommend(answers map[string]string) RecommendationResponse
}

type recommendationService struct {
	cat *catalog.Catalog
	log *logger.Logger
}

func NewRecommendationService(cat *catalog.Catalog, baseLog *logger.Logger) RecommendationService {
	return &recommendationService{
		cat: cat,
		log: baseLog.With("service", "RecommendationService"),
	}
}

func (rs *recommendationService) Recommend(answers map[string]string) RecommendationResponse {
	rec := recommend.Recommend(answers, rs.cat.HasTrack)

	resp := RecommendationResponse{
		TrackID:         rec.Primary.TrackID,
		MatchPercentage: rec.Primary.Percentage,
		Reasons:         rec.Primary.Reasons,
		Alternatives:    make([]Alternative, 0, len(rec.Alternatives)),
	}

	if t, ok := rs.cat.TrackByID(rec.Primary.TrackID); ok {
		resp.Title = t.Title
		resp.Description = t.Description
	} else {
		resp.Title = rec.Primary.TrackID
	}

	for _, alt := range rec.Alternatives {
		a := Alternative{
			TrackID:         alt.TrackID,
			Score:           alt.Score,
			Reasons:         alt.Reasons,
			MatchPercentage: alt.Percentage,
		}
		if t, ok := rs.cat.TrackByID(alt.TrackID); ok {
			a.Title = t.Title
			a.Description = t.Description
		} else {
			a.Title = alt.TrackID
		}
		resp.Alternatives = append(resp.Alternatives, a)
	}

	return resp
}
