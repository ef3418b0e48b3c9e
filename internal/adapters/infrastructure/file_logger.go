package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// FileLoggerAdapter writes one JSON object per line to a log file
type FileLoggerAdapter struct {
	file     *os.File
	minLevel slog.Level
	now      func() time.Time
	mutex    sync.Mutex
}

// NewFileLoggerAdapter opens logPath for appending, creating its directory
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		file:     file,
		minLevel: minLevel,
		now:      time.Now,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write(slog.LevelDebug, msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write(slog.LevelInfo, msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write(slog.LevelWarn, msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write(slog.LevelError, msg, fields)
}

// Close flushes and closes the log file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.file.Close()
}

func (f *FileLoggerAdapter) write(level slog.Level, msg string, fields []ports.Field) {
	if level < f.minLevel {
		return
	}

	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}
	entry["timestamp"] = f.now().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
