package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string // development | production
	LogLevel    string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	StorageDriver string // memory | postgres
	DatabaseURL   string

	CORSOrigins    string
	PaymentBaseURL string
	RateLimitMax   int
}

// Load reads configuration from the environment. Everything that touches env
// vars lives here; the rest of the app receives values explicitly.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer: getEnv("JWT_ISSUER", "planora"),
		TokenTTL:  getDuration("TOKEN_TTL", 7*24*time.Hour),

		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:5173"),
		PaymentBaseURL: getEnv("PAYMENT_BASE_URL", "http://localhost:5000"),
		RateLimitMax:   getInt("RATE_LIMIT_MAX", 100),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
