package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "ws://localhost:8000/rpc", cfg.SurrealDBURL)
	assert.Equal(t, "isha", cfg.SurrealDBNamespace)
	assert.Equal(t, "nomic-embed-text", cfg.EmbeddingModel)
	assert.Equal(t, 0.65, cfg.MatchThreshold)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SURREALDB_DATABASE", "other")
	t.Setenv("ISHA_MATCH_THRESHOLD", "0.8")
	t.Setenv("ISHA_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "other", cfg.SurrealDBDatabase)
	assert.Equal(t, 0.8, cfg.MatchThreshold)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadIgnoresBadFloat(t *testing.T) {
	t.Setenv("ISHA_MATCH_THRESHOLD", "not-a-number")

	cfg := Load()
	assert.Equal(t, 0.65, cfg.MatchThreshold)
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("pipeline ready", "examples", 141)
	logger.Debug("should be filtered")

	// Text to stderr, JSON to the file writer.
	assert.Contains(t, stderr.String(), "pipeline ready")
	assert.NotContains(t, stderr.String(), "should be filtered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(file.String())), &entry))
	assert.Equal(t, "pipeline ready", entry["msg"])
	assert.EqualValues(t, 141, entry["examples"])
}
