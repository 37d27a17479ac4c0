package core

import "time"

// Entry holds the pieces of one composed log message. It lives only for the
// duration of a single logging call.
type Entry struct {
	// Time is the instant the message was composed
	Time time.Time
	// Timestamp is Time rendered with the console layout
	Timestamp string
	Level     Level
	Tag       string
	// Category is meaningful only when HasCategory is true
	Category    string
	HasCategory bool
	// Message is the template after placeholder substitution
	Message string
	// Exception is the rendered error, meaningful only when HasException is true
	Exception    string
	HasException bool
	// Line is the fully composed console line, without a trailing newline
	Line string
}

// CategoryOrEmpty returns the category, or "" when it is absent.
func (e *Entry) CategoryOrEmpty() string {
	if !e.HasCategory {
		return ""
	}
	return e.Category
}

// ExceptionOrEmpty returns the rendered error, or "" when it is absent.
func (e *Entry) ExceptionOrEmpty() string {
	if !e.HasException {
		return ""
	}
	return e.Exception
}
