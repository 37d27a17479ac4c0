// Package filehandler provides the file output handler.
//
// A FileHandler owns exactly one open file. In append mode it appends to
// the configured path; otherwise it creates a fresh file whose name carries
// a timestamp inserted before the extension (see DerivePath). The name is
// computed once, when the handler is opened.
//
// Lines go through a bufio.Writer that is flushed after every line, so a
// crash loses at most the line being written.
package filehandler
