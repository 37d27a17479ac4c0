package filehandler

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/handler"
)

// FileHandler writes lines to a single log file, flushing after each line
type FileHandler struct {
	filename  string
	file      *os.File
	bufWriter *bufio.Writer
	stats     *handler.Stats
	closed    bool
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the configured path to the log file
	Filename string
	// Append appends to Filename. When false a new file named
	// stem_<timestamp>.ext is created next to Filename.
	Append bool
	// TimestampLayout formats the file name timestamp (default: core.LogfileTimestampLayout)
	TimestampLayout string
	// Now supplies the time used in the file name (default: core.SystemClock)
	Now core.Clock
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = core.LogfileTimestampLayout
	}
	if cfg.Now == nil {
		cfg.Now = core.SystemClock
	}
}

// DerivePath inserts "_" and t formatted with layout before the extension
// of path's file name: logs/app.log becomes logs/app_<t>.log. A name
// without a dot gets the timestamp appended.
func DerivePath(path, layout string, t time.Time) string {
	dir, name := filepath.Split(path)

	stem, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		stem, ext = name[:i], name[i:]
	}

	return dir + stem + "_" + t.Format(layout) + ext
}

// NewFileHandler opens the log file described by cfg, creating missing
// parent directories. In append mode the file is opened for appending;
// otherwise the derived timestamped file is created or truncated.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	applyFileDefaults(&cfg)

	name := cfg.Filename
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if !cfg.Append {
		name = DerivePath(cfg.Filename, cfg.TimestampLayout, cfg.Now())
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory for %s", name)
	}

	file, err := os.OpenFile(name, flags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", name)
	}

	return &FileHandler{
		filename:  name,
		file:      file,
		bufWriter: bufio.NewWriterSize(file, 4096),
		stats:     handler.NewStats(),
	}, nil
}

// WriteLine writes line and a newline, then flushes to the file.
func (h *FileHandler) WriteLine(line string) error {
	err := h.writeLine(line)
	h.stats.Record(err)
	return err
}

func (h *FileHandler) writeLine(line string) error {
	if h.closed {
		return errors.Errorf("write %s: handler closed", h.filename)
	}
	if _, err := h.bufWriter.WriteString(line); err != nil {
		return errors.Wrapf(err, "write %s", h.filename)
	}
	if err := h.bufWriter.WriteByte('\n'); err != nil {
		return errors.Wrapf(err, "write %s", h.filename)
	}
	if err := h.bufWriter.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", h.filename)
	}
	return nil
}

// Name returns the path of the file actually opened
func (h *FileHandler) Name() string {
	return h.filename
}

// File returns the underlying file
func (h *FileHandler) File() *os.File {
	return h.file
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes, syncs and closes the file. Closing twice is a no-op.
func (h *FileHandler) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.bufWriter.Flush(); err != nil {
		h.file.Close()
		return errors.Wrapf(err, "flush %s", h.filename)
	}
	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return errors.Wrapf(err, "sync %s", h.filename)
	}
	return errors.Wrapf(h.file.Close(), "close %s", h.filename)
}
