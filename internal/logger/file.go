package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/sf/internal/filelock"
)

// LogFileName is the name of the log file inside the sf config directory.
const LogFileName = "sf.log"

// detailedTimeFormat is the timestamp used for every line in the log file.
const detailedTimeFormat = "2006-01-02 15:04:05.000"

// FileLogger appends leveled messages to a single log file shared by every
// sf run. Each run starts with a header carrying a unique run ID. Writes are
// guarded by a lock file so concurrent sf processes never interleave lines.
type FileLogger struct {
	path     string
	file     *os.File
	lock     *filelock.FileLock
	logLevel string
	runID    string
	now      func() time.Time
	mu       sync.Mutex
}

// NewFileLogger opens path for appending, creating it and its directory if
// needed. If logLevel is empty or invalid, defaults to "info".
func NewFileLogger(path string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLogger{
		path:     path,
		file:     file,
		lock:     filelock.NewFileLock(filelock.LockPath(path)),
		logLevel: normalizeLogLevel(logLevel),
		runID:    uuid.NewString(),
		now:      time.Now,
	}, nil
}

// Path returns the log file path.
func (fl *FileLogger) Path() string {
	return fl.path
}

// RunID returns the identifier written in this run's header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// LogRunStart writes the run header. It is written regardless of the log level.
func (fl *FileLogger) LogRunStart(pattern, root string) {
	var b strings.Builder
	fmt.Fprintf(&b, "=== sf run %s ===\n", fl.runID)
	fmt.Fprintf(&b, "Started at: %s\n", fl.now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Pattern: %s\n", pattern)
	fmt.Fprintf(&b, "Root: %s\n", root)
	fl.writeRunLog(b.String())
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
// Format: "[2006-01-02 15:04:05.000] [LEVEL] <message>"
func (fl *FileLogger) logWithLevel(level string, message string) {
	if !shouldLog(fl.logLevel, strings.ToLower(level)) {
		return
	}

	formatted := fmt.Sprintf("[%s] [%s] %s\n", fl.now().Format(detailedTimeFormat), level, message)
	fl.writeRunLog(formatted)
}

// Close closes the log file. It is safe to call more than once.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return nil
	}
	err := fl.file.Close()
	fl.file = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// writeRunLog appends message under both the in-process mutex and the file lock.
// Write errors are dropped.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return
	}
	_ = filelock.AppendLocked(fl.lock, fl.file, []byte(message))
}
