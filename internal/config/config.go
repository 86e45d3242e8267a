package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port              string
	DBConn            string
	LogLevel          string
	JWTSecret         string
	UseMemoryStore    bool
	ReconcileSchedule string
	CORSOrigins       []string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBConn:            getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=finance sslmode=disable"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		UseMemoryStore:    getEnv("USE_MEMORY_STORE", "false") == "true",
		ReconcileSchedule: getEnv("RECONCILE_SCHEDULE", "@daily"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	if cfg.DBConn == "" && !cfg.UseMemoryStore {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ReconcileSchedule == "" {
		return nil, fmt.Errorf("RECONCILE_SCHEDULE is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
