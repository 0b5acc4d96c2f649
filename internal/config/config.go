package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	insecureSecretPlaceholder = "change_me_in_production"
	minSecretKeyLength        = 32
)

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is not set")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY uses the insecure placeholder value")
	ErrSecretKeyTooShort    = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
)

type AppConfig struct {
	SecretKey      string
	DBDriver       string
	DBPath         string
	DatabaseURL    string
	Port           string
	TimeZone       string
	LogLevel       string
	Environment    string
	CookieSecure   bool
	EnrichmentCron string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; it never overrides variables that
// are already set.
func Load() (*AppConfig, error) {
	cfg, err := LoadWithoutSecret()
	if err != nil {
		return nil, err
	}

	cfg.SecretKey, err = ResolveSecretKey()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithoutSecret is Load for maintenance commands that only touch the
// database and never sign sessions.
func LoadWithoutSecret() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:         getEnv("DB_PATH", filepath.Join("data", "herhealth.db")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		TimeZone:       getEnv("TZ", "UTC"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:    strings.ToLower(getEnv("ENVIRONMENT", "development")),
		EnrichmentCron: getEnv("ENRICHMENT_CRON", "@every 1m"),
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if raw := os.Getenv("COOKIE_SECURE"); raw != "" {
		secure, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	} else {
		cfg.CookieSecure = cfg.Environment == "production"
	}

	return cfg, nil
}

func ResolveSecretKey() (string, error) {
	secretKey := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	switch {
	case secretKey == "":
		return "", ErrSecretKeyMissing
	case secretKey == insecureSecretPlaceholder:
		return "", ErrSecretKeyPlaceholder
	case len(secretKey) < minSecretKeyLength:
		return "", ErrSecretKeyTooShort
	}
	return secretKey, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
