package cmd_test

import (
	"testing"

	"orderdesk/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, cfg.StorageDriver)
	assert.False(t, cfg.TrackAgentStatus)
	assert.Equal(t, "@every 30s", cfg.AgentReleaseSchedule)
	assert.Equal(t, 3, cfg.LowStockThreshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.IntentRulesPath)
}

func TestLoadConfig_Postgres(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{
		"STORAGE_DRIVER":     "Postgres",
		"DB_HOST":            "db",
		"DB_USER":            "desk",
		"DB_PASSWORD":        "secret",
		"DB_NAME":            "orders",
		"TRACK_AGENT_STATUS": "true",
		"LOG_LEVEL":          "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, cmd.StoragePostgres, cfg.StorageDriver)
	assert.True(t, cfg.TrackAgentStatus)
	assert.Equal(t, "host=db port=5432 user=desk password=secret dbname=orders sslmode=disable", cfg.DSN())

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}, "STORAGE_DRIVER"},
		{"postgres without host", map[string]string{"STORAGE_DRIVER": "postgres", "DB_USER": "u", "DB_NAME": "n"}, "DB_HOST"},
		{"bad bool", map[string]string{"TRACK_AGENT_STATUS": "maybe"}, "TRACK_AGENT_STATUS"},
		{"bad schedule", map[string]string{"AGENT_RELEASE_SCHEDULE": "whenever"}, "AGENT_RELEASE_SCHEDULE"},
		{"bad threshold", map[string]string{"LOW_STOCK_THRESHOLD": "-1"}, "LOW_STOCK_THRESHOLD"},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.LoadConfig(env(tt.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
