package logger_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/philipp01105/flatlog/formatter"
	"github.com/philipp01105/flatlog/logger"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
}

// Create a console logger and log with placeholders.
func ExampleNew() {
	log := logger.NewBuilder().
		WithConsole(os.Stdout).
		WithClock(fixedClock).
		Build()

	log.Info("http", "listening on {0}", ":8080")
	log.Debug("http", "filtered at the default level")
	log.Warn("", "no category")
	// Output:
	// [2026/01/15 09:30:00 AM] [INFO] [http]: listening on :8080
	// [2026/01/15 09:30:00 AM] [WARN]: no category
}

// Mirror every message to a CSV file.
func ExampleLogger_InitLogging() {
	dir, err := os.MkdirTemp("", "flatlog")
	if err != nil {
		return
	}
	defer os.RemoveAll(dir)

	log := logger.NewBuilder().
		WithConsole(os.Stdout).
		WithClock(fixedClock).
		WithFormatHandler(formatter.NewCSV()).
		Build()

	if err := log.InitLogging(filepath.Join(dir, "app.log"), false); err != nil {
		return
	}
	log.Info("db", "connected to {0}", "primary")
	log.Close()

	data, _ := os.ReadFile(filepath.Join(dir, "app_2026-01-15_09-30-00.log"))
	os.Stdout.Write(data)
	// Output:
	// [2026/01/15 09:30:00 AM] [INFO] [db]: connected to primary
	// "2026/01/15 09:30:00 AM","INFO","db","connected to primary",""
}
