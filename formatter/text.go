package formatter

import (
	"bytes"

	"github.com/philipp01105/flatlog/core"
)

// ConsoleLine composes the console representation of entry:
//
//	[timestamp] [TAG] [category]: message - exception
//
// The tag segment is omitted when the tag is empty, the category segment
// collapses to ": " when the category is absent, and the exception suffix
// appears only when an error was given.
func ConsoleLine(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	writeConsoleLine(entry, buf)
	return buf.String()
}

func writeConsoleLine(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.WriteString(entry.Timestamp)
	buf.WriteString("] ")

	if entry.Tag != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Tag)
		buf.WriteByte(']')
	}

	if entry.HasCategory {
		buf.WriteString(" [")
		buf.WriteString(entry.Category)
		buf.WriteString("]: ")
	} else {
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)

	if entry.HasException {
		buf.WriteString(" - ")
		buf.WriteString(entry.Exception)
	}
}

// Default writes the console line to the file unchanged.
type Default struct{}

// NewDefault creates the passthrough format handler
func NewDefault() *Default {
	return &Default{}
}

// Format returns entry.Line
func (Default) Format(entry *core.Entry) string {
	return entry.Line
}
