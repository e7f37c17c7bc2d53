package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("warn", "json", &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("info", "text", &buf)
	logger.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_RedactsCredentialFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Info("login attempt",
		slog.String("email", "user@example.com"),
		slog.String("password", "hunter2"),
		slog.String("token", "abc.def.ghi"),
	)

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "user@example.com")
	assert.NotContains(t, out, "abc.def.ghi")
}

func TestNew_RedactsBearerValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Info("request", slog.String("header", "Bearer sEcReTtOkEn123"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry["header"], "sEcReTtOkEn123")
}
