// Package core defines the shared types used across flatlog.
//
// It provides the Level type for severity filtering, the Entry type that
// carries the pieces of a single composed log message, and the helpers
// that build those pieces: placeholder substitution for {0}, {1}, ...
// markers, error rendering, and timestamp layouts.
//
// Levels are plain integers spaced by 100 so that callers can slot custom
// severities between the named ones. A message at level L is emitted iff
// the configured threshold is less than or equal to L; OffLevel sits above
// every named level and therefore silences the logger.
//
// Absent values in an Entry (no category, no error) are flagged explicitly
// with HasCategory and HasException rather than encoded as empty strings,
// so format handlers can tell "empty" from "not given".
package core
