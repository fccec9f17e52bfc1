package app

import (
	"fmt"
	"os"

	"github.com/kariyeryolu/backend/internal/catalog"
	httpx "github.com/kariyeryolu/backend/internal/http"
	"github.com/kariyeryolu/backend/internal/platform/logger"
	"github.com/kariyeryolu/backend/internal/progress"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Catalog  *catalog.Catalog
	Store    *progress.Store
	Services Services
	Server   *httpx.Server
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	cat, err := catalog.Load(cfg.CatalogPath, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	blobStore, err := wireBlobStore(cfg, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	store := progress.NewStore(blobStore, log)

	llm := wireLLM(log)

	svcs := wireServices(log, cat, store, llm)
	handlers := wireHandlers(log, svcs)

	// A nil router log disables the per-request access log; service and store
	// logging are unaffected.
	serverLog := log
	if !cfg.LogRequests {
		serverLog = nil
	}
	server := wireServer(serverLog, handlers)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Catalog:  cat,
		Store:    store,
		Services: svcs,
		Server:   server,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
