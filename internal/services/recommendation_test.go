package services

import (
	"testing"

	"github.com/kariyeryolu/backend/internal/platform/logger"
)

func TestRecommend_JoinsCatalogTitles(t *testing.T) {
	rs := NewRecommendationService(testCatalog(t), logger.NewNop())

	resp := rs.Recommend(map[string]string{"platform_preference": "web"})
	if resp.TrackID != "fullstack_developer" {
		t.Fatalf("expected fullstack_developer, got %s", resp.TrackID)
	}
	if resp.Title == "" || resp.Description == "" {
		t.Fatalf("expected catalog title and description, got %+v", resp)
	}
	if len(resp.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(resp.Alternatives))
	}
	for _, alt := range resp.Alternatives {
		if alt.Title == "" {
			t.Fatalf("alternative missing title: %+v", alt)
		}
	}
}

func TestRecommend_EmptyAnswersUseDefault(t *testing.T) {
	rs := NewRecommendationService(testCatalog(t), logger.NewNop())

	resp := rs.Recommend(nil)
	if resp.TrackID != "frontend_developer" {
		t.Fatalf("expected default track, got %s", resp.TrackID)
	}
	if resp.MatchPercentage != 50 {
		t.Fatalf("expected 50%% default match, got %d", resp.MatchPercentage)
	}
	if len(resp.Alternatives) != 0 {
		t.Fatalf("expected no alternatives, got %+v", resp.Alternatives)
	}
}
