// Package logger provides the small leveled logging facade used across
// the tool.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	infoLogger  = log.New(os.Stdout, "", 0)
	errorLogger = log.New(os.Stderr, "ERROR: ", 0)
	debugLogger = log.New(io.Discard, "DEBUG: ", log.Lshortfile)
)

// Initialize configures verbosity. Debug output stays discarded unless
// requested.
func Initialize(debug bool) {
	if debug {
		debugLogger.SetOutput(os.Stderr)
	}
}

// Info logs progress messages to stdout.
func Info(format string, args ...any) {
	infoLogger.Printf(format, args...)
}

// Error logs error messages to stderr.
func Error(format string, args ...any) {
	errorLogger.Printf(format, args...)
}

// Debug logs diagnostic messages when enabled.
func Debug(format string, args ...any) {
	debugLogger.Printf(format, args...)
}

// Fatal logs an error message and terminates with a non-zero status.
func Fatal(format string, args ...any) {
	errorLogger.Printf(format, args...)
	os.Exit(1)
}
