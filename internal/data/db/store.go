package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/tradewind-labs/northwind-backend/internal/platform/envutil"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

// Store owns the GORM handle for the catalog tables. Postgres serves
// deployments; SQLite covers local runs with the same schema.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStore(logg *logger.Logger) (*Store, error) {
	storeLog := logg.With("service", "Store")

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{Logger: gormLog}

	driver := strings.ToLower(envutil.String("DB_DRIVER", "postgres"))
	var (
		gdb *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		gdb, err = gorm.Open(sqlite.Open(sqliteDSN(envutil.String("SQLITE_PATH", "northwind.db"))), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}
	case "postgres":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			envutil.String("POSTGRES_USER", "postgres"),
			envutil.String("POSTGRES_PASSWORD", ""),
			envutil.String("POSTGRES_HOST", "localhost"),
			envutil.String("POSTGRES_PORT", "5432"),
			envutil.String("POSTGRES_NAME", "northwind"),
		)
		gdb, err = gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	return &Store{db: gdb, log: storeLog}, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?cache=shared&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) AutoMigrateAll() error {
	s.log.Info("Auto migrating catalog tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
