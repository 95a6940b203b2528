package app

import (
	"github.com/tradewind-labs/northwind-backend/internal/platform/envutil"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

type Config struct {
	Port        string
	LogMode     string
	DBDriver    string
	SeedOnStart bool
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		DBDriver:    envutil.String("DB_DRIVER", "postgres"),
		SeedOnStart: envutil.Bool("SEED_ON_START", false),
	}
	log.Info("Config loaded",
		"port", cfg.Port,
		"db_driver", cfg.DBDriver,
		"seed_on_start", cfg.SeedOnStart,
	)
	return cfg
}
