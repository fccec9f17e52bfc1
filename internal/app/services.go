package app

import (
	"math/rand"
	"time"

	"github.com/kariyeryolu/backend/internal/catalog"
	"github.com/kariyeryolu/backend/internal/platform/groq"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/progress"
	"github.com/kariyeryolu/backend/internal/services"
)

type Services struct {
	Track          services.TrackService
	Quiz           services.QuizService
	Recommendation services.RecommendationService
	Chat           services.ChatService
	Progress       services.ProgressService
}

func wireServices(log *logger.Logger, cat *catalog.Catalog, store *progress.Store, llm groq.Client) Services {
	log.Info("Wiring services...")

	// Each randomized service gets its own source; they serialize access
	// independently.
	quizRNG := rand.New(rand.NewSource(time.Now().UnixNano()))
	chatRNG := rand.New(rand.NewSource(time.Now().UnixNano() + 1))

	recSvc := services.NewRecommendationService(cat, log)
	return Services{
		Track:          services.NewTrackService(cat),
		Quiz:           services.NewQuizService(cat, log, quizRNG),
		Recommendation: recSvc,
		Chat:           services.NewChatService(cat, llm, log, chatRNG),
		Progress:       services.NewProgressService(store, cat, recSvc, log),
	}
}
