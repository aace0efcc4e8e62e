package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server configuration, loaded once at startup.
type Config struct {
	Addr     string
	DBPath   string
	LogLevel slog.Level

	JWTSecret []byte
	TokenTTL  time.Duration

	// Rate limit for the auth endpoints (register/login).
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment. It fails if MARKNOTE_JWT_SECRET is not set: signing
// tokens with a baked-in default would make every deployment forgeable.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	secret := os.Getenv("MARKNOTE_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("MARKNOTE_JWT_SECRET must be set")
	}

	cfg := &Config{
		Addr:           getEnv("MARKNOTE_ADDR", ":8080"),
		DBPath:         getEnv("MARKNOTE_DB_PATH", "marknote.db"),
		LogLevel:       parseLogLevel(getEnv("MARKNOTE_LOG_LEVEL", "info")),
		JWTSecret:      []byte(secret),
		TokenTTL:       time.Duration(getEnvAsInt("MARKNOTE_TOKEN_TTL_HOURS", 72)) * time.Hour,
		AuthRateLimit:  getEnvAsInt("MARKNOTE_AUTH_RATE_LIMIT", 10),
		AuthRateWindow: time.Duration(getEnvAsInt("MARKNOTE_AUTH_RATE_WINDOW_SECONDS", 60)) * time.Second,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
