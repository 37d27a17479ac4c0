package sloghandler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/logger"
)

const stamp = "[2024/01/01 01:05:09 PM] "

func newLogger(buf *bytes.Buffer, level core.Level) *logger.Logger {
	return logger.NewBuilder().
		WithConsole(buf).
		WithLevel(level).
		WithClock(func() time.Time { return time.Date(2024, 1, 1, 13, 5, 9, 0, time.UTC) }).
		Build()
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(newLogger(&bytes.Buffer{}, core.InfoLevel), "")

	assert.False(t, sh.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, sh.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, sh.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, sh.Enabled(context.Background(), slog.LevelError))
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newLogger(&buf, core.DebugLevel), "app"))

	log.Info("test message", "key", "value", "count", 42)

	assert.Equal(t, stamp+"[INFO] [app]: test message key=value count=42\n", buf.String())
}

func TestSlogHandler_CategoryAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newLogger(&buf, core.DebugLevel), "app"))

	log.Warn("slow query", CategoryKey, "db", "ms", 900)

	assert.Equal(t, stamp+"[WARN] [db]: slow query ms=900\n", buf.String())
}

func TestSlogHandler_ErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newLogger(&buf, core.DebugLevel), ""))

	log.Error("request failed", "err", errors.New("connection reset"), "path", "/api")

	assert.Equal(t, stamp+"[ERROR]: request failed path=/api - connection reset\n", buf.String())
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newLogger(&buf, core.DebugLevel), "")).With("request_id", "req-123")

	log.Info("test message")

	assert.Contains(t, buf.String(), "test message request_id=req-123")
}

func TestSlogHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newLogger(&buf, core.DebugLevel), "")).WithGroup("auth")

	log.Info("test message", "user_id", 123, slog.Group("session", "ttl", time.Minute))

	assert.Contains(t, buf.String(), "test message auth.user_id=123 auth.session.ttl=1m0s")
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newLogger(&buf, core.InfoLevel), ""))

	log.Debug("should not appear")
	assert.Zero(t, buf.Len())

	log.Info("should appear")
	assert.True(t, strings.Contains(buf.String(), "should appear"))
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug - 4, core.FineLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.SevereLevel},
	}

	for _, tt := range tests {
		if got := slogLevelToCore(tt.slogLevel); got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
