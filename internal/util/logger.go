package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLogLevel parses a log level string, defaulting to info
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects how entries are written
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Field is a key-value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogEntry is one written line
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Render formats the entry. Text fields are sorted by key so lines are stable across runs.
func (e LogEntry) Render(format LogFormat) (string, error) {
	if format == FormatJSON {
		data, err := sonic.Marshal(e)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", e.Timestamp.Format("2006/01/02 15:04:05"), e.Level, e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String(), nil
}

// LoggerOptions configures NewLogger
type LoggerOptions struct {
	Level  string
	Format LogFormat
	// File is appended to when set
	File string
	// Console receives a copy of every entry when non-nil
	Console io.Writer
}

// Logger writes leveled entries to a log file and optionally the console
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	format  LogFormat
	writers []io.Writer
	file    *os.File
}

// NewLogger creates a logger. At least one of File and Console must be set.
func NewLogger(opts LoggerOptions) (*Logger, error) {
	logger := &Logger{
		level:  ParseLogLevel(opts.Level),
		format: opts.Format,
	}
	if logger.format != FormatJSON {
		logger.format = FormatText
	}

	if opts.Console != nil {
		logger.writers = append(logger.writers, opts.Console)
	}
	if opts.File != "" {
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		logger.file = file
		logger.writers = append(logger.writers, file)
	}
	if len(logger.writers) == 0 {
		return nil, fmt.Errorf("log file must be specified when not logging to the console")
	}

	return logger, nil
}

func (l *Logger) log(level LogLevel, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level.String(),
		Message:   msg,
	}
	if len(fields) > 0 {
		entry.Fields = make(map[string]interface{}, len(fields))
		for _, field := range fields {
			entry.Fields[field.Key] = field.Value
		}
	}

	line, err := entry.Render(l.format)
	if err != nil {
		log.Printf("Failed to format log entry: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.writers {
		if _, err := fmt.Fprintln(w, line); err != nil {
			log.Printf("Failed to write log entry: %v", err)
		}
	}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Info(msg string, fields ...Field) { l.log(LevelInfo, msg, fields) }

func (l *Logger) Warn(msg string, fields ...Field) { l.log(LevelWarn, msg, fields) }

func (l *Logger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

// Close closes the log file, if any
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writers = nil
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
