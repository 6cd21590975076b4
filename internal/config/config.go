package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	JWTSecret  string
	SessionTTL time.Duration

	AdminUsername string
	AdminPassword string

	Sections []string

	RateLimitRegister time.Duration
	RateLimitLogin    time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		Sections: splitList(getEnv("SECTIONS", "Produksi,Engineering,Quality,PPIC,HR-GA,Finance,IT")),
	}

	// Parsing durations
	var err error
	cfg.SessionTTL, err = parseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.RateLimitRegister, err = parseDuration(getEnv("RATE_LIMIT_REGISTER", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REGISTER: %w", err)
	}
	cfg.RateLimitLogin, err = parseDuration(getEnv("RATE_LIMIT_LOGIN", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
