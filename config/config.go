package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Supported values for APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	AppEnv string
	Debug  bool
	Port   string

	// Database config
	DBDriver    string
	DatabaseURL string // Full DSN, takes precedence over the discrete fields below
	DBHost      string
	DBPort      int
	DBUser      string
	DBPass      string
	DBName      string

	// Logging config
	LogLevel      string
	LogFile       string // Empty means stdout only
	LogMaxSize    int    // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// Statistics cache, disabled when RedisAddr is empty
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StatsCacheTTL time.Duration

	CORSAllowOrigins []string

	// Older clients expect 201 from GET /questions/{id}
	LegacyGetQuestionStatusCreated bool
}

// LoadConfig reads the .env file (if any) and environment variables into an AppConfig.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}
	return FromEnv(), nil
}

// FromEnv builds an AppConfig from the current process environment only.
func FromEnv() *AppConfig {
	cfg := &AppConfig{}

	cfg.AppEnv = strings.ToLower(getEnv("APP_ENV", EnvDevelopment))
	cfg.Debug = getEnvBool("DEBUG", cfg.AppEnv == EnvDevelopment)
	cfg.Port = getEnv("PORT", "8080")

	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	cfg.DBUser = getEnv("DB_USER", "survey")
	cfg.DBPass = getEnv("DB_PASS", "")
	cfg.DBName = getEnv("DB_NAME", "survey")
	cfg.DBPort = getEnvInt("DB_PORT", defaultPort(cfg.DBDriver))

	if cfg.AppEnv == EnvTesting {
		cfg.DBDriver = DriverSQLite
		cfg.DatabaseURL = "file::memory:?cache=shared&_foreign_keys=on"
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "INFO")
	if cfg.Debug {
		cfg.LogLevel = getEnv("LOG_LEVEL", "DEBUG")
	}
	cfg.LogFile = getEnv("LOG_FILE", "")
	cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisDB = getEnvInt("REDIS_DB", 0)
	cfg.StatsCacheTTL = time.Duration(getEnvInt("STATS_CACHE_TTL", 30)) * time.Second // Default: 30 seconds

	cfg.CORSAllowOrigins = getEnvStringSlice("CORS_ALLOW_ORIGINS", []string{"*"})

	cfg.LegacyGetQuestionStatusCreated = getEnvBool("LEGACY_GET_QUESTION_STATUS_CREATED", false)

	return cfg
}

// IsTesting reports whether the application runs in test mode.
func (c *AppConfig) IsTesting() bool {
	return c.AppEnv == EnvTesting
}

func defaultPort(driver string) int {
	switch driver {
	case DriverPostgres:
		return 5432
	default:
		return 3306
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

// getEnvStringSlice parses comma-separated environment variable into string slice
// Format: "item1,item2,item3" -> []string{"item1", "item2", "item3"}
func getEnvStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		items := strings.Split(val, ",")
		result := make([]string, 0, len(items))
		for _, item := range items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultVal
}
