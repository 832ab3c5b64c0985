package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Backend
	APIBaseURL     string
	RequestTimeout time.Duration

	// Session persistence
	SessionBackend string // "file" or "redis"
	SessionFile    string
	RedisAddr      string
	RedisPass      string
	RedisDB        int

	// Session presence polling
	SessionPollInterval time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT_MS", 3000) * time.Millisecond,

		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", "file")),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      getEnv("REDIS_PASS", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		SessionPollInterval: getEnvDuration("SESSION_POLL_MS", 5000) * time.Millisecond,
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eventflow-session.json"
	}
	return home + "/.eventflow-session.json"
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

func getEnvDuration(key string, fallback int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
