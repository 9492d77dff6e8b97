package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// PostgreSQL
	DatabaseURL string
	DBMaxConns  int32

	// Every query a request issues runs under this deadline.
	QueryTimeout time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DBMaxConns:   int32(getEnvInt("DB_MAX_CONNS", 10)),
		QueryTimeout: getEnvDuration("QUERY_TIMEOUT", 10*time.Second),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
