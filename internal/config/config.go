package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	ListenAddr  string
	Environment string

	DBBackend string
	DBPath    string
	DBDSN     string

	UploadDir      string
	MaxUploadBytes int64

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	SessionLifetime     time.Duration
	SessionCookieSecure bool

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env (si existe) y luego el entorno.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		ListenAddr:          getEnv("LISTEN_ADDR", ":5000"),
		Environment:         getEnv("ENV", "development"),
		DBBackend:           strings.ToLower(getEnv("DB_BACKEND", BackendSQLite)),
		DBPath:              getEnv("DB_PATH", "pets.db"),
		DBDSN:               getEnv("DB_DSN", ""),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionCookieSecure: getEnv("SESSION_COOKIE_SECURE", "") == "1",
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		AppName:             getEnv("APP_NAME", "pet-adoption"),
	}

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "16777216"), 10, 64)
	if err != nil || maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be a positive integer")
	}
	cfg.MaxUploadBytes = maxUpload

	lifetime, err := time.ParseDuration(getEnv("SESSION_LIFETIME", "24h"))
	if err != nil || lifetime <= 0 {
		return nil, fmt.Errorf("SESSION_LIFETIME must be a positive duration")
	}
	cfg.SessionLifetime = lifetime

	switch cfg.DBBackend {
	case BackendSQLite, BackendMemory:
	case BackendPostgres:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown DB_BACKEND %q", cfg.DBBackend)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
