package app

import (
	httpx "github.com/kariyeryolu/backend/internal/http"
	httpH "github.com/kariyeryolu/backend/internal/http/handlers"
	"github.com/kariyeryolu/backend/internal/platform/logger"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Track          *httpH.TrackHandler
	Quiz           *httpH.QuizHandler
	Recommendation *httpH.RecommendationHandler
	Chat           *httpH.ChatHandler
	Progress       *httpH.ProgressHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         httpH.NewHealthHandler(),
		Track:          httpH.NewTrackHandler(svcs.Track),
		Quiz:           httpH.NewQuizHandler(svcs.Quiz),
		Recommendation: httpH.NewRecommendationHandler(svcs.Recommendation),
		Chat:           httpH.NewChatHandler(log, svcs.Chat),
		Progress:       httpH.NewProgressHandler(svcs.Progress),
	}
}

func wireServer(log *logger.Logger, handlers Handlers) *httpx.Server {
	return httpx.NewServer(httpx.RouterConfig{
		Log:                   log,
		HealthHandler:         handlers.Health,
		TrackHandler:          handlers.Track,
		QuizHandler:           handlers.Quiz,
		RecommendationHandler: handlers.Recommendation,
		ChatHandler:           handlers.Chat,
		ProgressHandler:       handlers.Progress,
	})
}
