package db

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/utils"
)

type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDatabaseService opens the annotation database. DB_DRIVER selects
// postgres (the deployed store) or sqlite (local development).
func NewDatabaseService(logg *logger.Logger) (*DatabaseService, error) {
	serviceLog := logg.With("service", "DatabaseService")

	gormLog := gormLogger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	gormCfg := &gorm.Config{Logger: gormLog}

	driver := utils.GetEnv("DB_DRIVER", "postgres", logg)
	var db *gorm.DB
	var err error
	switch driver {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "tenselab.db", logg)
		db, err = gorm.Open(sqlite.Open(path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
	case "postgres":
		host := utils.GetEnv("POSTGRES_HOST", "localhost", logg)
		port := utils.GetEnv("POSTGRES_PORT", "5432", logg)
		user := utils.GetEnv("POSTGRES_USER", "postgres", logg)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", logg)
		name := utils.GetEnv("POSTGRES_NAME", "tenselab", logg)

		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			user, password, host, port, name,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	return &DatabaseService{db: db, log: serviceLog}, nil
}

func (s *DatabaseService) DB() *gorm.DB { return s.db }

func (s *DatabaseService) AutoMigrateAll() error {
	return AutoMigrateAll(s.db)
}
