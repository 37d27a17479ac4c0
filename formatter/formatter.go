package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/flatlog/core"
)

// FormatHandler transforms a composed entry into the line written to the
// log file. The console always receives Entry.Line unchanged.
type FormatHandler interface {
	// Format returns the file representation of entry, without a trailing newline
	Format(entry *core.Entry) string
}

// FormatHandlerFunc adapts an ordinary function to a FormatHandler.
type FormatHandlerFunc func(entry *core.Entry) string

// Format calls f(entry)
func (f FormatHandlerFunc) Format(entry *core.Entry) string {
	return f(entry)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
