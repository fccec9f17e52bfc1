package app

import (
	"github.com/kariyeryolu/backend/internal/platform/envutil"
	"github.com/kariyeryolu/backend/internal/platform/logger"
)

// Storage modes for the user-record blob.
const (
	StorageModeFile   = "file"
	StorageModeRedis  = "redis"
	StorageModeSQLite = "sqlite"
	StorageModeMemory = "memory"
)

type Config struct {
	Port string

	StorageMode string
	StoragePath string // file mode
	StorageKey  string // redis and sqlite modes
	SQLitePath  string
	RedisAddr   string
	RedisPass   string
	RedisDB     int

	CatalogPath string

	LogRequests bool
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.Str("PORT", "8080"),
		StorageMode: envutil.Str("STORAGE_MODE", StorageModeFile),
		StoragePath: envutil.Str("STORAGE_PATH", "data/user_record.json"),
		StorageKey:  envutil.Str("STORAGE_KEY", "kariyeryolu_user_data"),
		SQLitePath:  envutil.Str("SQLITE_PATH", "data/kariyeryolu.db"),
		RedisAddr:   envutil.Str("REDIS_ADDR", "localhost:6379"),
		RedisPass:   envutil.Str("REDIS_PASSWORD", ""),
		RedisDB:     envutil.Int("REDIS_DB", 0),
		CatalogPath: envutil.Str("CATALOG_PATH", ""),
		LogRequests: envutil.Bool("LOG_REQUESTS", true),
	}
	log.Debug("config loaded", "port", cfg.Port, "storage_mode", cfg.StorageMode)
	return cfg
}
