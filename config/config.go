package config

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"
)

type AppConfig struct {
	PostgresURL          string
	PollIntervalSeconds  int
	FetchTimeoutSeconds  int
	MaxConcurrentFetches int
	EnablePolling        bool
	AppEnv               string // EnvDevelopment or EnvProduction
	LogLevel             slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.AppEnv = os.Getenv("APP_ENV")
	cfg.PostgresURL = loadRequired("POSTGRES_URL")
	cfg.PollIntervalSeconds = loadOptionalInt("POLL_INTERVAL_SECONDS", 300)
	cfg.FetchTimeoutSeconds = loadOptionalInt("FETCH_TIMEOUT_SECONDS", 10)
	cfg.MaxConcurrentFetches = loadOptionalInt("MAX_CONCURRENT_FETCHES", 8)
	cfg.EnablePolling = loadOptional("ENABLE_POLLING", "true") == "true"

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	var err error
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Required env var not set", "key", key)
		os.Exit(1)
	}
	return value
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func loadOptionalInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Invalid int env var, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}

func (c AppConfig) IsProduction() bool {
	return Config.AppEnv == EnvProduction
}
