package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtpl/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("defaults to text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithJSONFormatter(),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithJSONFormatter(),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v := ctx.Value(ctxKey); v != nil {
					return slog.String("id", v.(string)), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "42", decode(t, buf)["id"])
	})
}

func TestWithRunID(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter(), logger.WithRunID())

	ctx := logger.WithRunIDContext(context.Background())
	id := logger.RunIDFromContext(ctx)
	require.Len(t, id, 36)

	log.InfoContext(ctx, "built")
	assert.Equal(t, id, decode(t, buf)["run_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "no run")
	_, ok := decode(t, buf)["run_id"]
	assert.False(t, ok)
}

func TestFromConfig(t *testing.T) {
	t.Run("production preset is json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		opts := append(logger.FromConfig(logger.Config{Env: "production"}, "mailtpl"), logger.WithOutput(buf))
		logger.New(opts...).Info("hi")
		entry := decode(t, buf)
		assert.Equal(t, "mailtpl", entry["service"])
	})

	t.Run("explicit level and format win", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cfg := logger.Config{Env: "development", Level: "warn", Format: "json"}
		log := logger.New(append(logger.FromConfig(cfg, ""), logger.WithOutput(buf))...)
		log.Debug("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("invalid level keeps preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cfg := logger.Config{Env: "development", Level: "loud"}
		log := logger.New(append(logger.FromConfig(cfg, ""), logger.WithOutput(buf))...)
		log.Debug("debug on")
		assert.Contains(t, buf.String(), "debug on")
	})
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())
	logger.SetAsDefault(log)
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
