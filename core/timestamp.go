package core

import "time"

const (
	// ConsoleTimestampLayout is the default layout for console timestamps
	ConsoleTimestampLayout = "2006/01/02 03:04:05 PM"
	// LogfileTimestampLayout is the default layout for timestamped log file names
	LogfileTimestampLayout = "2006-01-02_03-04-05"
)

// Clock returns the current time
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}
