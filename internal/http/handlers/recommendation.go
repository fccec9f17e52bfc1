package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kariyeryolu/backend/internal/http/response"
	"github.com/kariyeryolu/backend/internal/services"
)

type RecommendationHandler struct {
	rec services.RecommendationService
}

func NewRecommendationHandler(rec services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{rec: rec}
}

// POST /api/recommend
// Always answers 200 for valid JSON; an unreadable body simply scores as an
// empty survey and falls through to the default recommendation.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var answers map[string]string
	if err := c.ShouldBindJSON(&answers); err != nil {
		answers = map[string]string{}
	}
	response.RespondOK(c, h.rec.Recommend(answers))
}
