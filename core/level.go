package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity level of a log entry
type Level int

const (
	// FineLevel logs a lot of information
	FineLevel Level = 0
	// DebugLevel for messages useful during development
	DebugLevel Level = 100
	// InfoLevel for informative messages (default)
	InfoLevel Level = 200
	// WarnLevel for warnings, the application may no longer work correctly
	WarnLevel Level = 300
	// ErrorLevel for errors, the application may no longer work correctly
	ErrorLevel Level = 400
	// SevereLevel for critical errors, the application will no longer work correctly
	SevereLevel Level = 500
	// OffLevel disables logging
	OffLevel Level = 600
)

// String returns the string representation of the level. Levels without a
// name are rendered as their integer value.
func (l Level) String() string {
	switch l {
	case FineLevel:
		return "FINE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case SevereLevel:
		return "SEVERE"
	case OffLevel:
		return "OFF"
	default:
		return strconv.Itoa(int(l))
	}
}

// Enabled reports whether a message at level msg passes threshold l.
func (l Level) Enabled(msg Level) bool {
	return l <= msg
}

// ParseLevel converts a level name (case-insensitive) or an integer to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FINE":
		return FineLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "SEVERE":
		return SevereLevel, nil
	case "OFF":
		return OffLevel, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return InfoLevel, errors.Errorf("unknown log level %q", s)
	}
	return Level(n), nil
}
