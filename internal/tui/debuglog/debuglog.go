// ABOUTME: Debug log for the TUI, written to a file in the config directory
// ABOUTME: Keeps diagnostics away from the terminal the TUI is drawing on

package debuglog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/logger"
)

// FileName is the log file created inside the config directory
const FileName = "debug.log"

var (
	logFile *os.File
	mu      sync.Mutex
	enabled bool
)

// Init opens the debug log in configDir. An empty configDir disables logging.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		enabled = false
		return nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		enabled = false
		return err
	}

	f, err := os.OpenFile(filepath.Join(configDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		enabled = false
		return err
	}

	logFile = f
	enabled = true
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	enabled = false
}

// writer serialises slog output with Log calls
type writer struct{}

func (writer) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || logFile == nil {
		return len(p), nil
	}
	return logFile.Write(p)
}

// Logger returns a structured logger writing to the debug log, for the API
// client's request logging
func Logger(level string) *slog.Logger {
	var w io.Writer = writer{}
	return logger.New(w, level, "text")
}

// Log writes a message to the debug log
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Error logs an error with context
func Error(context string, err error) {
	if err == nil {
		return
	}
	Log("ERROR [%s]: %v", context, err)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	Log("WARN: "+format, args...)
}
