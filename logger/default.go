package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger, a console-only Logger built on
// first use. Default and SetDefault are safe for concurrent use; the
// Logger they return is not.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// SetDefault sets the default logger. Passing nil makes the next Default
// call build a fresh one.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Fine logs a lot of detail using the default logger
func Fine(category, message string, args ...interface{}) {
	Default().Fine(category, message, args...)
}

// FineErr logs a lot of detail with err using the default logger
func FineErr(category, message string, err error, args ...interface{}) {
	Default().FineErr(category, message, err, args...)
}

// Debug logs a debug message using the default logger
func Debug(category, message string, args ...interface{}) {
	Default().Debug(category, message, args...)
}

// DebugErr logs a debug message with err using the default logger
func DebugErr(category, message string, err error, args ...interface{}) {
	Default().DebugErr(category, message, err, args...)
}

// Info logs an informative message using the default logger
func Info(category, message string, args ...interface{}) {
	Default().Info(category, message, args...)
}

// InfoErr logs an informative message with err using the default logger
func InfoErr(category, message string, err error, args ...interface{}) {
	Default().InfoErr(category, message, err, args...)
}

// Warn logs a warning using the default logger
func Warn(category, message string, args ...interface{}) {
	Default().Warn(category, message, args...)
}

// WarnErr logs a warning with err using the default logger
func WarnErr(category, message string, err error, args ...interface{}) {
	Default().WarnErr(category, message, err, args...)
}

// Error logs an error using the default logger
func Error(category, message string, args ...interface{}) {
	Default().Error(category, message, args...)
}

// ErrorErr logs an error with err using the default logger
func ErrorErr(category, message string, err error, args ...interface{}) {
	Default().ErrorErr(category, message, err, args...)
}

// Severe logs a critical error using the default logger
func Severe(category, message string, args ...interface{}) {
	Default().Severe(category, message, args...)
}

// SevereErr logs a critical error with err using the default logger
func SevereErr(category, message string, err error, args ...interface{}) {
	Default().SevereErr(category, message, err, args...)
}
