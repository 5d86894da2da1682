package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port        string
	PostgresURI string
	RedisURI    string
	// MongoURI is optional; when empty the review-history log is disabled.
	MongoURI       string
	SessionTTL     time.Duration
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		PostgresURI:    getEnv("POSTGRES_URI", "postgres://localhost:5432/hanzicards?sslmode=disable"),
		RedisURI:       getEnv("REDIS_URI", "redis://localhost:6379/0"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		SessionTTL:     getDurationEnv("SESSION_TTL", 7*24*time.Hour),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
