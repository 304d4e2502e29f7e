// Package log provides file-based logging plus an env-gated debug mode with
// layout tracing. Enable debug mode by setting CW_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var logFileName = filepath.Join(os.TempDir(), "cardwall.log")

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger

	logFile *os.File
)

// Initialize opens the log file and sets up the shared loggers. Call once
// at startup; pair with Close. If the file cannot be opened, logging is
// discarded rather than failing startup.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	var w io.Writer = f
	if err != nil {
		fmt.Printf("could not open log file: %s\n", err)
		w = io.Discard
	} else {
		logFile = f
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(w, "INFO: ", flags)
	WarningLog = log.New(w, "WARNING: ", flags)
	ErrorLog = log.New(w, "ERROR: ", flags)

	InitDebug()
}

// Close closes the log file.
func Close() {
	CloseDebug()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
