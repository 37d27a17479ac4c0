package logger

import (
	"github.com/philipp01105/flatlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	FineLevel   = core.FineLevel
	DebugLevel  = core.DebugLevel
	InfoLevel   = core.InfoLevel
	WarnLevel   = core.WarnLevel
	ErrorLevel  = core.ErrorLevel
	SevereLevel = core.SevereLevel
	OffLevel    = core.OffLevel
)

// ParseLevel converts a level name or integer to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
