// Package consolehandler provides the console output handler, which
// writes each line to an io.Writer (default: os.Stdout).
//
// The handler does not own its writer: Close leaves the stream open.
package consolehandler
