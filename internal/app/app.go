package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/annolab/tenselab-backend/internal/data/db"
	httpapi "github.com/annolab/tenselab-backend/internal/http"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/session"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *httpapi.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Sessions *session.Manager
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

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := dbService.DB()

	sessions := session.NewManager(log)

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, sessions)
	handlerset := wireHandlers(log, serviceset, sessions)
	mw := wireMiddleware(log, serviceset)
	server := wireRouter(log, handlerset, mw)

	return &App{
		Log:      log,
		DB:       theDB,
		Server:   server,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Sessions: sessions,
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
