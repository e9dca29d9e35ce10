package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// FileLoggerAdapter appends structured JSON lines to a file
type FileLoggerAdapter struct {
	filePath string
	minLevel slog.Level
	mutex    sync.Mutex
}

// NewFileLoggerAdapter creates the log directory and returns a logger that
// drops entries below minLevel
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minLevel: minLevel,
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelDebug, msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelInfo, msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelWarn, msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelError, msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level slog.Level, msg string, fields ...ports.Field) {
	if level < f.minLevel {
		return
	}

	logEntry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level.String(),
		"message":   msg,
	}

	for _, field := range fields {
		value := field.Value
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		logEntry[field.Key] = value
	}

	jsonData, err := json.Marshal(logEntry)
	if err != nil {
		// plain strings always marshal
		jsonData, _ = json.Marshal(map[string]string{
			"timestamp": logEntry["timestamp"].(string),
			"level":     slog.LevelError.String(),
			"message":   "failed to marshal log entry",
			"original":  msg,
			"error":     err.Error(),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.writeRawLog(jsonData)
}

func (f *FileLoggerAdapter) writeRawLog(data []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
