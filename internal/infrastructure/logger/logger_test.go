package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin-service/internal/infrastructure/logger"
)

func TestLogger_WithKeepsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("test", &buf)

	log.With(slog.String("op_id", "abc")).Info("step done", slog.Int64("post_id", 7))

	out := buf.String()
	assert.Contains(t, out, "op_id=abc")
	assert.Contains(t, out, "post_id=7")
	assert.Contains(t, out, "step done")
}

func TestLogger_ProdIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("prod", &buf)

	log.Debug("hidden")
	log.Info("visible", slog.String("k", "v"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "v", entry["k"])
	assert.NotContains(t, buf.String(), "hidden")
}
