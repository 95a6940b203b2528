package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/data/db"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

type App struct {
	Log    *logger.Logger
	DB     *gorm.DB
	Router *gin.Engine
	Cfg    Config
	Repos  Repos
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

	store, err := db.NewStore(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := store.DB()

	if cfg.SeedOnStart {
		log.Info("Seeding catalog data...")
		if err := db.Seed(theDB); err != nil {
			log.Sync()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	reposet := wireRepos(theDB, log)
	handlerset := wireHandlers(log, reposet)
	router := wireRouter(log, handlerset)

	return &App{
		Log:    log,
		DB:     theDB,
		Router: router,
		Cfg:    cfg,
		Repos:  reposet,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
