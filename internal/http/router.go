package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/kariyeryolu/backend/internal/http/handlers"
	httpMW "github.com/kariyeryolu/backend/internal/http/middleware"
	"github.com/kariyeryolu/backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler         *httpH.HealthHandler
	TrackHandler          *httpH.TrackHandler
	QuizHandler           *httpH.QuizHandler
	RecommendationHandler *httpH.RecommendationHandler
	ChatHandler           *httpH.ChatHandler
	ProgressHandler       *httpH.ProgressHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.RequestID())
	r.Use(httpMW.CORS())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Catalog
		if cfg.TrackHandler != nil {
			api.GET("/tracks", cfg.TrackHandler.ListTracks)
			api.GET("/tracks/:id", cfg.TrackHandler.GetTrack)
			api.GET("/node/:id", cfg.TrackHandler.GetNode)
		}

		// Quiz
		if cfg.QuizHandler != nil {
			api.GET("/quiz/:nodeId", cfg.QuizHandler.GetQuiz)
			api.POST("/quiz/submit", cfg.QuizHandler.SubmitQuiz)
		}

		// Recommendation
		if cfg.RecommendationHandler != nil {
			api.POST("/recommend", cfg.RecommendationHandler.Recommend)
		}

		// Chat
		if cfg.ChatHandler != nil {
			api.POST("/chat", cfg.ChatHandler.Chat)
		}

		// Progress
		if cfg.ProgressHandler != nil {
			api.GET("/progress", cfg.ProgressHandler.GetProgress)
			api.POST("/progress/complete", cfg.ProgressHandler.CompleteLesson)
			api.POST("/progress/quiz", cfg.ProgressHandler.CompleteQuiz)
			api.POST("/progress/survey", cfg.ProgressHandler.SubmitSurvey)
			api.POST("/progress/reset", cfg.ProgressHandler.Reset)
		}
	}

	return r
}
