package logger

import (
	"io"

	"github.com/pkg/errors"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/formatter"
	"github.com/philipp01105/flatlog/handler"
	"github.com/philipp01105/flatlog/handler/consolehandler"
	"github.com/philipp01105/flatlog/handler/filehandler"
)

// LoggerTag is the category used for records the logger emits about its
// own failures.
const LoggerTag = "flatlog"

// ErrAlreadyInitialized is returned by InitLogging when file logging was
// already initialized and not closed since.
var ErrAlreadyInitialized = errors.New("logging already initialized")

// Logger writes leveled messages to the console and, once InitLogging has
// been called with a path, to a log file.
//
// A Logger is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Logger struct {
	console       handler.Handler
	level         core.Level
	consoleLayout string
	logfileLayout string
	fileEnabled   bool
	formatHandler formatter.FormatHandler
	now           core.Clock

	path        string
	appendMode  bool
	initialized bool
	file        handler.Handler
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	console       handler.Handler
	level         core.Level
	consoleLayout string
	logfileLayout string
	fileEnabled   bool
	formatHandler formatter.FormatHandler
	now           core.Clock
	initFile      bool
	logFile       string
	appendLog     bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:         core.InfoLevel, // Default level
		consoleLayout: core.ConsoleTimestampLayout,
		logfileLayout: core.LogfileTimestampLayout,
		fileEnabled:   true,
		formatHandler: formatter.NewDefault(),
		now:           core.SystemClock,
	}
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithConsole sets the console stream (default: os.Stdout)
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: w})
	return b
}

// WithHandler replaces the console sink
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.console = h
	return b
}

// WithFormatHandler sets the file format handler
func (b *Builder) WithFormatHandler(f formatter.FormatHandler) *Builder {
	b.formatHandler = f
	return b
}

// WithConsoleTimestampLayout sets the time layout used in log lines
func (b *Builder) WithConsoleTimestampLayout(layout string) *Builder {
	b.consoleLayout = layout
	return b
}

// WithLogfileTimestampLayout sets the time layout used in timestamped file names
func (b *Builder) WithLogfileTimestampLayout(layout string) *Builder {
	b.logfileLayout = layout
	return b
}

// WithFileLogging enables or disables writing to the log file
func (b *Builder) WithFileLogging(enabled bool) *Builder {
	b.fileEnabled = enabled
	return b
}

// WithClock overrides the time source
func (b *Builder) WithClock(now core.Clock) *Builder {
	b.now = now
	return b
}

// WithLogFile makes Build call InitLogging(path, appendLog)
func (b *Builder) WithLogFile(path string, appendLog bool) *Builder {
	b.initFile = true
	b.logFile = path
	b.appendLog = appendLog
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	console := b.console
	if console == nil {
		console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	}
	now := b.now
	if now == nil {
		now = core.SystemClock
	}

	l := &Logger{
		console:       console,
		level:         b.level,
		consoleLayout: b.consoleLayout,
		logfileLayout: b.logfileLayout,
		fileEnabled:   b.fileEnabled,
		formatHandler: b.formatHandler,
		now:           now,
	}

	if b.initFile {
		// A fresh logger cannot be initialized already.
		_ = l.InitLogging(b.logFile, b.appendLog)
	}
	return l
}

// New creates a console-only Logger with default settings
func New() *Logger {
	return NewBuilder().Build()
}

// InitLogging gives the logger log-to-file capabilities. It may be called
// once; further calls fail with ErrAlreadyInitialized until Close.
//
// An empty path disables file logging and is not an error. When appendMode
// is false the file actually written is path with a timestamp inserted
// before the extension. A file that cannot be opened is reported through
// the logger itself and leaves file writes disabled.
func (l *Logger) InitLogging(path string, appendMode bool) error {
	if l.initialized {
		return errors.Wrapf(ErrAlreadyInitialized, "init logging to %q", path)
	}

	l.appendMode = appendMode
	l.path = path

	if !l.HasLoggingCapabilities() {
		l.SetFileLogging(false)
		return nil
	}

	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:        path,
		Append:          appendMode,
		TimestampLayout: l.logfileLayout,
		Now:             l.now,
	})
	if err != nil {
		l.internalError("Failed to init logging", err)
	} else {
		l.file = fh
	}

	l.initialized = true
	return nil
}

// Log composes and emits one message. It is the primitive behind every
// leveled helper.
//
// The message is dropped when level is below the threshold. Otherwise
// {0}, {1}, ... in message are replaced by args, err (if non-nil) is
// appended, and the line is written to the console. Unless
// suppressFileWrite is set, the format handler's rendering of the same
// message is written to the log file.
func (l *Logger) Log(level core.Level, tag, category, message string, err error, suppressFileWrite bool, args ...interface{}) {
	// Level check optimization - exit early BEFORE any allocations
	if !l.level.Enabled(level) {
		return
	}

	t := l.now()
	entry := core.Entry{
		Time:        t,
		Timestamp:   t.Format(l.consoleLayout),
		Level:       level,
		Tag:         tag,
		Category:    category,
		HasCategory: category != "",
		Message:     core.Substitute(message, args...),
	}
	if err != nil {
		entry.Exception = core.RenderError(err)
		entry.HasException = true
	}
	entry.Line = formatter.ConsoleLine(&entry)

	// Console failures are counted by the handler and otherwise ignored.
	_ = l.console.WriteLine(entry.Line)

	if l.fileEnabled && !suppressFileWrite {
		l.logToFile(&entry)
	}
}

func (l *Logger) logToFile(entry *core.Entry) {
	if !l.HasLoggingCapabilities() || l.file == nil {
		return
	}

	line := entry.Line
	if l.formatHandler != nil {
		line = l.formatHandler.Format(entry)
	}

	if err := l.file.WriteLine(line); err != nil {
		l.internalError("Failed to write log message to log file", err)
	}
}

// internalError reports a failure of the logger itself. The record never
// goes to the file, so a broken file cannot recurse.
func (l *Logger) internalError(msg string, err error) {
	l.Log(core.ErrorLevel, "", LoggerTag, msg, err, true)
}

// Close closes the log file. It is ignored when the logger has no logging
// capabilities. Afterwards InitLogging may be called again. A failure to
// close is reported through the logger; the file handle is released
// either way.
func (l *Logger) Close() {
	if !l.HasLoggingCapabilities() {
		return
	}

	if l.file != nil {
		if err := l.file.Close(); err != nil {
			l.internalError("Failed to close log file writer", err)
		}
	}

	l.file = nil
	l.path = ""
	l.initialized = false
}

// Level returns the threshold
func (l *Logger) Level() core.Level {
	return l.level
}

// SetLevel sets the threshold; messages below it are not logged
func (l *Logger) SetLevel(level core.Level) {
	l.level = level
}

// FileLogging reports whether messages are written to the log file
func (l *Logger) FileLogging() bool {
	return l.fileEnabled
}

// SetFileLogging enables or disables writing to the log file. Enabling has
// no effect until the logger has logging capabilities.
func (l *Logger) SetFileLogging(enabled bool) {
	l.fileEnabled = enabled
}

// ConsoleTimestampLayout returns the time layout used in log lines
func (l *Logger) ConsoleTimestampLayout() string {
	return l.consoleLayout
}

// SetConsoleTimestampLayout sets the time layout used in log lines
func (l *Logger) SetConsoleTimestampLayout(layout string) {
	l.consoleLayout = layout
}

// LogfileTimestampLayout returns the time layout used in timestamped file names
func (l *Logger) LogfileTimestampLayout() string {
	return l.logfileLayout
}

// SetLogfileTimestampLayout sets the time layout used in timestamped file
// names. It applies to the next InitLogging.
func (l *Logger) SetLogfileTimestampLayout(layout string) {
	l.logfileLayout = layout
}

// FormatHandler returns the file format handler
func (l *Logger) FormatHandler() formatter.FormatHandler {
	return l.formatHandler
}

// SetFormatHandler sets the file format handler. A nil handler writes the
// console line.
func (l *Logger) SetFormatHandler(f formatter.FormatHandler) {
	l.formatHandler = f
}

// AppendMode reports whether InitLogging was asked to append
func (l *Logger) AppendMode() bool {
	return l.appendMode
}

// Path returns the configured log file path, or "" if none
func (l *Logger) Path() string {
	return l.path
}

// HasLoggingCapabilities reports whether a log file path is configured.
// It stays true after a failed open; writes are then skipped.
func (l *Logger) HasLoggingCapabilities() bool {
	return l.path != ""
}

// LogFileName returns the name of the file currently open for writing,
// or "" when none is open.
func (l *Logger) LogFileName() string {
	if fh, ok := l.file.(*filehandler.FileHandler); ok {
		return fh.Name()
	}
	return ""
}

// Stats holds write counters for both sinks
type Stats struct {
	Console handler.Snapshot
	File    handler.Snapshot
}

// Stats returns a snapshot of the sinks' write counters. The file counters
// cover the currently open file only.
func (l *Logger) Stats() Stats {
	var s Stats
	if sp, ok := l.console.(handler.StatsProvider); ok {
		s.Console = sp.Stats()
	}
	if sp, ok := l.file.(handler.StatsProvider); ok {
		s.File = sp.Stats()
	}
	return s
}
