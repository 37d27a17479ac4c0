// Package formatter defines how composed log entries are rendered.
//
// ConsoleLine builds the human-readable line that always goes to the
// console. FormatHandler is the extension point for the file sink: the
// logger hands it the composed entry and writes whatever string it
// returns as one line of the log file.
//
// Two handlers are built in. Default passes the console line through
// unchanged; CSV emits a quoted, comma separated record with line breaks
// stripped so that multi-line error traces never split a record.
//
// Both ConsoleLine and CSV compose into a pooled bytes.Buffer. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
package formatter
