package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/jobs"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort             string
	StorageDriver        string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	IntentRulesPath      string
	TrackAgentStatus     bool
	AgentReleaseSchedule string
	LowStockSchedule     string
	LowStockThreshold    int
	LogLevel             string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv
// after the optional .env file has been loaded. Unset keys take defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:             value("HTTP_PORT", "8080"),
		StorageDriver:        strings.ToLower(value("STORAGE_DRIVER", StorageMemory)),
		DBHost:               value("DB_HOST", ""),
		DBPort:               value("DB_PORT", "5432"),
		DBUser:               value("DB_USER", ""),
		DBPassword:           value("DB_PASSWORD", ""),
		DBName:               value("DB_NAME", ""),
		DBSslMode:            value("DB_SSLMODE", "disable"),
		IntentRulesPath:      value("INTENT_RULES_PATH", ""),
		AgentReleaseSchedule: value("AGENT_RELEASE_SCHEDULE", "@every 30s"),
		LowStockSchedule:     value("LOW_STOCK_SCHEDULE", "@every 5m"),
		LogLevel:             value("LOG_LEVEL", "info"),
	}

	var errList []error

	track, err := strconv.ParseBool(value("TRACK_AGENT_STATUS", "false"))
	if err != nil {
		errList = append(errList, fmt.Errorf("TRACK_AGENT_STATUS: %w", err))
	}
	cfg.TrackAgentStatus = track

	threshold, err := strconv.Atoi(value("LOW_STOCK_THRESHOLD", "3"))
	if err != nil {
		errList = append(errList, fmt.Errorf("LOW_STOCK_THRESHOLD: %w", err))
	}
	cfg.LowStockThreshold = threshold

	errList = append(errList, cfg.Validate())
	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		for key, v := range map[string]string{"DB_HOST": c.DBHost, "DB_USER": c.DBUser, "DB_NAME": c.DBName} {
			if v == "" {
				errList = append(errList, fmt.Errorf("%s is required for the postgres storage driver", key))
			}
		}
	default:
		errList = append(errList, fmt.Errorf("STORAGE_DRIVER %q is not one of memory, postgres", c.StorageDriver))
	}

	if _, err := jobs.ParseSchedule(c.AgentReleaseSchedule); err != nil {
		errList = append(errList, fmt.Errorf("AGENT_RELEASE_SCHEDULE: %w", err))
	}
	if _, err := jobs.ParseSchedule(c.LowStockSchedule); err != nil {
		errList = append(errList, fmt.Errorf("LOW_STOCK_SCHEDULE: %w", err))
	}
	if c.LowStockThreshold < 0 {
		errList = append(errList, fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative, got %d", c.LowStockThreshold))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger builds a production zap logger at LogLevel.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
