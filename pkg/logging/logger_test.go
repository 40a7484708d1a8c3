package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultConfig("package-sorter")
	cfg.Level = level
	cfg.Output = buf
	return New(cfg), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("VERSION", "")

	cfg := DefaultConfig("package-sorter")
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, "package-sorter", cfg.ServiceName)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "unknown", cfg.Version)
}

func TestLoggerBaseAttributes(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.WithComponent("classifier").Info("classified", "stack", "STANDARD")

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "package-sorter", records[0]["service"])
	assert.Equal(t, "classifier", records[0]["component"])
	assert.Equal(t, "STANDARD", records[0]["stack"])
	assert.NotEmpty(t, records[0]["time"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept")

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0]["msg"])
}

func TestLoggerWithErrorAndFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	assert.Same(t, logger, logger.WithError(nil))

	logger.WithError(errors.New("boom")).
		WithFields(map[string]any{"packageId": "PKG-1"}).
		Error("failed")

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "boom", records[0]["error"])
	assert.Equal(t, "PKG-1", records[0]["packageId"])
}

func TestLoggerEventWithContext(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	logger.Event(ctx, "sortation.package_classified", map[string]any{"stack": "SPECIAL"})

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "Business event", records[0]["msg"])
	assert.Equal(t, "sortation.package_classified", records[0]["eventType"])
	assert.Equal(t, "req-1", records[0]["requestId"])
	assert.Equal(t, "corr-1", records[0]["correlationId"])
	assert.Equal(t, "SPECIAL", records[0]["stack"])
}

func TestWithContextWithoutAttributes(t *testing.T) {
	logger, _ := newBufferLogger(LevelInfo)
	assert.Same(t, logger, logger.WithContext(context.Background()))
}
