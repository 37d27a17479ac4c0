package consolehandler

import (
	"io"
	"os"

	"github.com/philipp01105/flatlog/handler"
)

// ConsoleHandler writes lines to a console stream
type ConsoleHandler struct {
	writer io.Writer
	stats  *handler.Stats
	buf    []byte
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	return &ConsoleHandler{
		writer: cfg.Writer,
		stats:  handler.NewStats(),
		buf:    make([]byte, 0, 256),
	}
}

// WriteLine writes line and a newline in a single Write call.
func (h *ConsoleHandler) WriteLine(line string) error {
	h.buf = append(h.buf[:0], line...)
	h.buf = append(h.buf, '\n')
	_, err := h.writer.Write(h.buf)
	h.stats.Record(err)
	if cap(h.buf) > 64*1024 {
		h.buf = make([]byte, 0, 256)
	}
	return err
}

// Writer returns the underlying stream
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the console stream is not owned by the handler.
func (h *ConsoleHandler) Close() error {
	return nil
}
