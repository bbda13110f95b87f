package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	HTTPPort    string
	PostgresDSN string

	JWTSecret  string
	SessionTTL time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	CORSAllowOrigin string
}

// Load reads the configuration from the environment. The database and token
// secret have no sane defaults, so their absence is fatal.
func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		PostgresDSN:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		CORSAllowOrigin:    getEnv("CORS_ALLOW_ORIGIN", ""),
	}

	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
