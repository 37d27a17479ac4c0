package logger

import "github.com/philipp01105/flatlog/core"

// Fine logs a lot of detail. {0}, {1}, ... in message are replaced by args.
func (l *Logger) Fine(category, message string, args ...interface{}) {
	l.Log(core.FineLevel, "FINE", category, message, nil, false, args...)
}

// FineErr logs a lot of detail with err appended to the line.
func (l *Logger) FineErr(category, message string, err error, args ...interface{}) {
	l.Log(core.FineLevel, "FINE", category, message, err, false, args...)
}

// Debug logs a debug message. {0}, {1}, ... in message are replaced by args.
func (l *Logger) Debug(category, message string, args ...interface{}) {
	l.Log(core.DebugLevel, "DEBUG", category, message, nil, false, args...)
}

// DebugErr logs a debug message with err appended to the line.
func (l *Logger) DebugErr(category, message string, err error, args ...interface{}) {
	l.Log(core.DebugLevel, "DEBUG", category, message, err, false, args...)
}

// Info logs an informative message. {0}, {1}, ... in message are replaced by args.
func (l *Logger) Info(category, message string, args ...interface{}) {
	l.Log(core.InfoLevel, "INFO", category, message, nil, false, args...)
}

// InfoErr logs an informative message with err appended to the line.
func (l *Logger) InfoErr(category, message string, err error, args ...interface{}) {
	l.Log(core.InfoLevel, "INFO", category, message, err, false, args...)
}

// Warn logs a warning. {0}, {1}, ... in message are replaced by args.
func (l *Logger) Warn(category, message string, args ...interface{}) {
	l.Log(core.WarnLevel, "WARN", category, message, nil, false, args...)
}

// WarnErr logs a warning with err appended to the line.
func (l *Logger) WarnErr(category, message string, err error, args ...interface{}) {
	l.Log(core.WarnLevel, "WARN", category, message, err, false, args...)
}

// Error logs an error. {0}, {1}, ... in message are replaced by args.
func (l *Logger) Error(category, message string, args ...interface{}) {
	l.Log(core.ErrorLevel, "ERROR", category, message, nil, false, args...)
}

// ErrorErr logs an error with err appended to the line.
func (l *Logger) ErrorErr(category, message string, err error, args ...interface{}) {
	l.Log(core.ErrorLevel, "ERROR", category, message, err, false, args...)
}

// Severe logs a critical error. {0}, {1}, ... in message are replaced by args.
func (l *Logger) Severe(category, message string, args ...interface{}) {
	l.Log(core.SevereLevel, "SEVERE", category, message, nil, false, args...)
}

// SevereErr logs a critical error with err appended to the line.
func (l *Logger) SevereErr(category, message string, err error, args ...interface{}) {
	l.Log(core.SevereLevel, "SEVERE", category, message, err, false, args...)
}
