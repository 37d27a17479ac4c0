package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/formatter"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	l, err := cfg.Build()
	require.NoError(t, err)

	assert.Equal(t, core.InfoLevel, l.Level())
	assert.True(t, l.FileLogging())
	assert.False(t, l.HasLoggingCapabilities())
	assert.Equal(t, core.ConsoleTimestampLayout, l.ConsoleTimestampLayout())
	assert.IsType(t, &formatter.Default{}, l.FormatHandler())
}

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
level: warn
file:
  path: logs/app.log
  append: true
  enabled: false
  format: csv
timestamps:
  console: "15:04:05"
  logfile: "20060102"
`))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "logs/app.log", cfg.File.Path)
	assert.True(t, cfg.File.Append)
	require.NotNil(t, cfg.File.Enabled)
	assert.False(t, *cfg.File.Enabled)
	assert.Equal(t, "csv", cfg.File.Format)
	assert.Equal(t, "15:04:05", cfg.Timestamps.Console)
	assert.Equal(t, "20060102", cfg.Timestamps.Logfile)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "level: loud"},
		{"bad format", "file:\n  format: xml"},
		{"unknown key", "levle: info"},
		{"malformed", "level: [info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BuildsFileLogger(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")
	cfgPath := filepath.Join(dir, "logger.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
level: debug
file:
  path: `+logPath+`
  append: true
  format: csv
timestamps:
  console: "2006-01-02 15:04:05"
`), 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	b, err := cfg.Builder()
	require.NoError(t, err)

	var buf bytes.Buffer
	l := b.WithConsole(&buf).
		WithClock(func() time.Time { return time.Date(2024, 1, 1, 13, 5, 9, 0, time.UTC) }).
		Build()

	assert.Equal(t, core.DebugLevel, l.Level())
	assert.True(t, l.AppendMode())
	assert.Equal(t, logPath, l.LogFileName())

	l.Debug("cfg", "loaded")
	l.Close()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01 13:05:09","DEBUG","cfg","loaded",""`+"\n", string(data))
	assert.Equal(t, "[2024-01-01 13:05:09] [DEBUG] [cfg]: loaded\n", buf.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
