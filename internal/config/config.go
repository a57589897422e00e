package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Store backend kinds.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	Store        string
	DBDSN        string
	LogLevel     string
	LogFormat    string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Store backend (default: memory)
	cfg.Store = getEnv("STORE", StoreMemory)
	switch cfg.Store {
	case StoreMemory, StorePostgres:
	default:
		return nil, fmt.Errorf("invalid STORE %q: must be %q or %q", cfg.Store, StoreMemory, StorePostgres)
	}

	// Database DSN is required for the postgres store
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.Store == StorePostgres && cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required when STORE=%s", StorePostgres)
	}

	// Logging (defaults: info, json)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
