package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"surveyapi/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSQLiteDSN = "survey.db"

// Database bundles the GORM handle with resources released on shutdown.
type Database struct {
	DB       *gorm.DB
	embedded *EmbeddedServer
}

// Close closes the connection pool and stops the embedded server, if any.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if d.embedded != nil {
		if cerr := d.embedded.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// ConnectDB opens the database selected by cfg.DBDriver.
func ConnectDB(ctx context.Context, cfg *AppConfig) (*Database, error) {
	database := &Database{}

	if cfg.DBDriver == DriverMemory {
		srv, err := StartEmbeddedServer(ctx, cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("start embedded mysql: %w", err)
		}
		database.embedded = srv
	}

	dialector, err := buildDialector(cfg, database.embedded)
	if err != nil {
		if database.embedded != nil {
			database.embedded.Close()
		}
		return nil, err
	}

	logger.Infof("Connecting to %s database", cfg.DBDriver)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(cfg),
		TranslateError: true,
	})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		if database.embedded != nil {
			database.embedded.Close()
		}
		return nil, err
	}
	logger.Infof("GORM connected successfully using driver %s", cfg.DBDriver)

	database.DB = db
	return database, nil
}

func buildDialector(cfg *AppConfig, embedded *EmbeddedServer) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		dsn := SQLiteDSN(cfg.DatabaseURL)
		if err := ensureDirForSQLite(dsn); err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser,
				cfg.DBPass,
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	case DriverPostgres:
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
				cfg.DBHost,
				cfg.DBUser,
				cfg.DBPass,
				cfg.DBName,
				cfg.DBPort,
			)
		}
		return postgres.Open(dsn), nil
	case DriverMemory:
		return mysql.Open(embedded.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// SQLiteDSN normalizes a sqlite DATABASE_URL and turns foreign key enforcement on.
// Accepts plain paths, "file:" URIs and "sqlite:///path" URLs.
func SQLiteDSN(raw string) string {
	dsn := strings.TrimSpace(raw)
	if dsn == "" {
		dsn = defaultSQLiteDSN
	}
	dsn = strings.TrimPrefix(dsn, "sqlite:///")
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func newGormLogger(cfg *AppConfig) gormlogger.Interface {
	level := gormlogger.Warn
	printer := logger.Printer(logger.WARN)
	if cfg.Debug {
		level = gormlogger.Info
		printer = logger.Printer(logger.DEBUG)
	}
	return gormlogger.New(printer, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
