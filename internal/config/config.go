// Package config loads the aggregator settings from the environment (prefix AGGREGATE_).
//
// Variables:
//
//	AGGREGATE_PORT                          HTTP port (default 8080)
//	AGGREGATE_DOCS_ROOT                     directory holding <service>/swagger.json|openapi.json (default docs)
//	AGGREGATE_DOCS_PREFIX                   public prefix of the raw documents (default /docs)
//	AGGREGATE_UI_PATH                       Swagger UI mount point (default /swagger-ui)
//	AGGREGATE_SELF_DOCS                     publish the aggregator's own OpenAPI document (default true)
//	AGGREGATE_LOG_LEVEL                     debug, info, warn or error (default info)
//	AGGREGATE_LOG_FORMAT                    json or text (default json)
//	AGGREGATE_SHUTDOWN_TIMEOUT_SECONDS      graceful shutdown timeout (default 10)
//	AGGREGATE_READ_HEADER_TIMEOUT_SECONDS   http.Server ReadHeaderTimeout (default 5)
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Version is set at build time via -ldflags "-X github.com/webasoo/swagger-aggregate/internal/config.Version=...".
var Version = "dev"

const prefix = "AGGREGATE"

// Config fields map to AGGREGATE_<FIELD_IN_SNAKE_CASE>. Unprefixed names such as PORT are not
// read.
type Config struct {
	Port                     string `split_words:"true" default:"8080"`
	DocsRoot                 string `split_words:"true" default:"docs"`
	DocsPrefix               string `split_words:"true" default:"/docs"`
	UIPath                   string `split_words:"true" default:"/swagger-ui"`
	SelfDocs                 bool   `split_words:"true" default:"true"`
	LogLevel                 string `split_words:"true" default:"info"`
	LogFormat                string `split_words:"true" default:"json"`
	ShutdownTimeoutSeconds   int    `split_words:"true" default:"10"`
	ReadHeaderTimeoutSeconds int    `split_words:"true" default:"5"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: %s_PORT is empty", prefix)
	}
	if strings.TrimSpace(c.DocsRoot) == "" {
		return fmt.Errorf("config: %s_DOCS_ROOT is empty", prefix)
	}
	if strings.Trim(c.DocsPrefix, "/ ") == strings.Trim(c.UIPath, "/ ") {
		return fmt.Errorf("config: docs prefix and ui path must differ, both are %q", c.UIPath)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.ShutdownTimeoutSeconds < 0 || c.ReadHeaderTimeoutSeconds < 0 {
		return fmt.Errorf("config: timeouts must not be negative")
	}
	return nil
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}

// Logger builds the process logger described by LogLevel and LogFormat.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: unknown log level %q", s)
	}
	return level, nil
}
