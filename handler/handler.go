package handler

// Handler is a line sink. The logger hands every handler fully rendered
// lines; handlers never see levels or entries.
type Handler interface {
	// WriteLine writes line followed by a newline
	WriteLine(line string) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes.
type StatsProvider interface {
	Stats() Snapshot
}
