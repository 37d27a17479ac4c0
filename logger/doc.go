// Package logger is the public API of flatlog. Most users only need to
// import this package.
//
// A Logger always prints to the console. After InitLogging it also writes
// every message to a log file, either appending to the given path or,
// when not appending, creating a new file with a timestamp in its name:
//
//	log := logger.New()
//	log.InitLogging("logs/app.log", false) // logs/app_2026-01-15_09-30-00.log
//	defer log.Close()
//
//	log.Info("http", "listening on {0}", ":8080")
//	log.ErrorErr("db", "query {0} failed", err, "users")
//
// Lines look like
//
//	[2026/01/15 09:30:00 AM] [INFO] [http]: listening on :8080
//
// The file receives the same line unless a formatter.FormatHandler such
// as formatter.CSV is installed with SetFormatHandler.
//
// The logger never fails its caller because of I/O. Open, write and
// close errors are reported as ERROR records on the console with category
// "flatlog"; those records are never written to the file. Only calling
// InitLogging twice returns an error, ErrAlreadyInitialized.
//
// A Logger holds mutable state and is not safe for concurrent use. The
// package-level functions delegate to Default, which is built lazily.
package logger
