package app

import (
	"fmt"

	"github.com/kariyeryolu/backend/internal/platform/groq"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/progress/blob"
)

// wireBlobStore selects the persistence adapter for the user-record blob.
func wireBlobStore(cfg Config, log *logger.Logger) (blob.Store, error) {
	switch cfg.StorageMode {
	case StorageModeFile:
		return blob.NewFileStore(cfg.StoragePath)
	case StorageModeRedis:
		return blob.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.StorageKey, log)
	case StorageModeSQLite:
		return blob.NewGormStore(cfg.SQLitePath, cfg.StorageKey, log)
	case StorageModeMemory:
		return blob.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_MODE %q", cfg.StorageMode)
	}
}

// wireLLM returns nil when no API key is configured; the chat service then
// answers from retrieval alone.
func wireLLM(log *logger.Logger) groq.Client {
	llm, err := groq.NewClient(log)
	if err != nil {
		log.Warn("Groq client unavailable, chat will degrade to retrieval", "error", err)
		return nil
	}
	return llm
}
