package formatter

import (
	"strings"

	"github.com/philipp01105/flatlog/core"
)

// CSV writes each entry as one comma separated record:
//
//	"timestamp","tag","category","message","exception"
//
// Absent category and exception become empty fields. Line breaks are
// removed so a multi-line stack trace stays on a single record. Embedded
// double quotes are written as-is and are not escaped.
type CSV struct{}

// NewCSV creates the CSV format handler
func NewCSV() *CSV {
	return &CSV{}
}

// Format renders entry as a CSV record
func (CSV) Format(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	fields := [...]string{
		entry.Timestamp,
		entry.Tag,
		entry.CategoryOrEmpty(),
		entry.Message,
		entry.ExceptionOrEmpty(),
	}
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(f)
		buf.WriteByte('"')
	}

	return lineBreaks.Replace(buf.String())
}

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")
