package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "docs", c.DocsRoot)
	assert.Equal(t, "/docs", c.DocsPrefix)
	assert.Equal(t, "/swagger-ui", c.UIPath)
	assert.True(t, c.SelfDocs)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout())
	assert.Equal(t, 5*time.Second, c.ReadHeaderTimeout())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AGGREGATE_PORT", "9090")
	t.Setenv("AGGREGATE_DOCS_ROOT", "/srv/specs")
	t.Setenv("AGGREGATE_SELF_DOCS", "false")
	t.Setenv("AGGREGATE_LOG_LEVEL", "debug")
	t.Setenv("AGGREGATE_LOG_FORMAT", "text")
	t.Setenv("AGGREGATE_SHUTDOWN_TIMEOUT_SECONDS", "3")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Addr())
	assert.Equal(t, "/srv/specs", c.DocsRoot)
	assert.False(t, c.SelfDocs)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"AGGREGATE_LOG_LEVEL":                "loud",
		"AGGREGATE_LOG_FORMAT":               "xml",
		"AGGREGATE_SELF_DOCS":                "maybe",
		"AGGREGATE_SHUTDOWN_TIMEOUT_SECONDS": "-1",
		"AGGREGATE_UI_PATH":                  "/docs/",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoggerHonoursLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	c := Config{LogLevel: "warn", LogFormat: "json"}
	logger := c.Logger(&buf)

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown", "k", "v")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])

	buf.Reset()
	Config{LogLevel: "info", LogFormat: "text"}.Logger(&buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
