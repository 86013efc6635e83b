package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelEnvVar controls logging verbosity when no level flag is given.
	// Unset or empty means silent. Valid values: debug, info, warn, error.
	LevelEnvVar = "MAHORAGA_LOG_LEVEL"

	// FileEnvVar selects the log destination when no file flag is given
	FileEnvVar = "MAHORAGA_LOG_FILE"
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Initialize configures the process-wide zap core. Empty arguments fall back
// to the environment; with no level at all logging stays silent. The TUI owns
// the terminal, so output always goes to a file.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(FileEnvVar)
	}

	if level == "" {
		setBase(zap.NewNop())
		return nil
	}

	if path == "" {
		return fmt.Errorf("log file path is required when logging is enabled")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	zl, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	setBase(zl)
	return nil
}

// Sync flushes any buffered log entries
func Sync() error {
	return current().Sync()
}

func setBase(zl *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = zl
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// VerboseChecker interface for checking verbose state
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger is a component-scoped view over the process-wide zap core
type Logger struct {
	component      string
	verboseChecker VerboseChecker
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// New creates a new logger instance. A nil checker leaves Debug and Info
// gated by the zap level alone.
func New(component string, verboseChecker VerboseChecker) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
	}
}

// NewWithCallback creates a new logger instance with a callback function
func NewWithCallback(component string, verboseCheck func() bool) *Logger {
	return New(component, &callbackChecker{callback: verboseCheck})
}

// WithComponent creates a logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: l.verboseChecker,
	}
}

// callbackChecker implements VerboseChecker with a callback function
type callbackChecker struct {
	callback func() bool
}

func (c *callbackChecker) IsVerbose() bool {
	if c.callback == nil {
		return false
	}
	return c.callback()
}

func (l *Logger) verbose() bool {
	return l.verboseChecker == nil || l.verboseChecker.IsVerbose()
}

func (l *Logger) core() *zap.Logger {
	component := l.component
	if component == "" {
		component = "main"
	}
	return current().Named(component)
}

// Debug logs debug messages (only when verbose)
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.verbose() {
		l.core().Debug(format(msg, args))
	}
}

// Info logs informational messages (only when verbose)
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.verbose() {
		l.core().Info(format(msg, args))
	}
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.core().Warn(format(msg, args))
}

// Error logs error messages
func (l *Logger) Error(msg string, args ...interface{}) {
	l.core().Error(format(msg, args))
}

// DebugWithFields logs debug message with structured fields
func (l *Logger) DebugWithFields(msg string, fields []Field, args ...interface{}) {
	if l.verbose() {
		l.core().Debug(format(msg, args), toZap(fields)...)
	}
}

// InfoWithFields logs info message with structured fields
func (l *Logger) InfoWithFields(msg string, fields []Field, args ...interface{}) {
	if l.verbose() {
		l.core().Info(format(msg, args), toZap(fields)...)
	}
}

// WarnWithFields logs warning message with structured fields
func (l *Logger) WarnWithFields(msg string, fields []Field, args ...interface{}) {
	l.core().Warn(format(msg, args), toZap(fields)...)
}

func format(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func toZap(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

// Helper functions for common field types
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
