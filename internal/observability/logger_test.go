package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfigLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zapcore.DebugLevel, newConfig("DEBUG", nil).Level.Level())
	assert.Equal(t, zapcore.WarnLevel, newConfig(" warn ", nil).Level.Level())
	assert.Equal(t, zapcore.InfoLevel, newConfig("", nil).Level.Level())
	assert.Equal(t, zapcore.InfoLevel, newConfig("loud", nil).Level.Level())
}

func TestLoggerWritesSeverityAndMessage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	logger, err := newConfig("info", []string{path}).Build()
	require.NoError(t, err)

	logger.Info("site listening")
	logger.Debug("dropped")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry), "exactly one JSON entry expected: %s", raw)
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "site listening", entry["message"])
	assert.Contains(t, entry, "timestamp")
}
