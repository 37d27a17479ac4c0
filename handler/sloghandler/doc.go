// Package sloghandler provides an adapter from a flatlog Logger to
// log/slog.Handler, so code written against the standard library's
// slog API can emit flat console and file lines.
//
// slog levels map onto flatlog levels (Debug→DEBUG, Info→INFO,
// Warn→WARN, Error→ERROR, Error+4 and above→SEVERE, below Debug→FINE).
// Attributes are flattened into the message as key=value pairs, groups
// become dotted key prefixes, a top-level "category" string attribute
// sets the line's category and the first error valued attribute is
// rendered as the line's exception.
package sloghandler
