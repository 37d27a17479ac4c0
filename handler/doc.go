// Package handler provides the Handler interface implemented by the
// logger's output sinks, plus the Stats counters they share.
//
// A Handler receives finished lines and writes each one followed by a
// newline. Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes to any io.Writer (default: stdout).
//   - filehandler.FileHandler writes to a single log file, either appending
//     to a fixed path or creating a new timestamped file, and flushes after
//     every line.
//
// The adapters in sloghandler and zaphandler go the other way: they let
// log/slog and zap emit through a flatlog Logger.
//
// Handlers are synchronous and are not safe for concurrent use.
package handler
