package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port          string `validate:"required,numeric"`
	RedisURL      string `validate:"required"`
	DatabaseURL   string
	MigrationsDir string `validate:"required"`

	WeatherAPIKey       string
	CalendarificAPIKey  string
	ExchangeRateAPIKey  string
	AmadeusClientID     string `validate:"required_with=AmadeusClientSecret"`
	AmadeusClientSecret string `validate:"required_with=AmadeusClientID"`
	GroqAPIKey          string

	FallbackCategory   string `validate:"oneof=beach mountain city adventure relaxing"`
	CacheTTLSeconds    int    `validate:"min=1"`
	RateLimitPerMinute int    `validate:"min=1"`
	LogLevel           string `validate:"oneof=debug info warn error"`
}

// Load reads the optional env files (".env" when none are given), then the
// environment. Variables already set in the environment take precedence.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	ttl, err := intEnv("CACHE_TTL", 3600)
	if err != nil {
		return nil, err
	}
	limit, err := intEnv("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		RedisURL:            os.Getenv("REDIS_URL"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "migrations"),
		WeatherAPIKey:       os.Getenv("WEATHER_API_KEY"),
		CalendarificAPIKey:  os.Getenv("CALENDARIFIC_API_KEY"),
		ExchangeRateAPIKey:  os.Getenv("EXCHANGERATE_API_KEY"),
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		FallbackCategory:    strings.ToLower(getEnv("FALLBACK_CATEGORY", "beach")),
		CacheTTLSeconds:     ttl,
		RateLimitPerMinute:  limit,
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// CacheTTL is how long upstream responses stay cached.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

// AmadeusEnabled reports whether flight search credentials are configured.
func (c *Config) AmadeusEnabled() bool {
	return c.AmadeusClientID != "" && c.AmadeusClientSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
