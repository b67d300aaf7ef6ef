package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the upper-case level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "INFO"
}

// ParseLogLevel converts a string log level to its LogLevel constant.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Options configures where a Logger writes and how its file is rotated.
// An empty File writes to stdout only.
type Options struct {
	File       string
	Level      LogLevel
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger provides leveled logging with optional file rotation.
type Logger struct {
	loggers map[LogLevel]*log.Logger
	closer  io.Closer
	level   LogLevel
	mu      sync.RWMutex
}

var (
	instance *Logger
	instMu   sync.RWMutex
)

// Init installs the global logger built from opts, replacing any previous one.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	instMu.Lock()
	prev := instance
	instance = l
	instMu.Unlock()
	if prev != nil {
		prev.Close()
	}
	return nil
}

// New creates a logger writing to stdout and, when opts.File is set, to a rotated file.
func New(opts Options) (*Logger, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		}
		out = io.MultiWriter(os.Stdout, rotated)
		closer = rotated
	}

	return NewWithWriter(out, opts.Level, closer), nil
}

// NewWithWriter creates a logger on an arbitrary writer. closer may be nil.
func NewWithWriter(w io.Writer, level LogLevel, closer io.Closer) *Logger {
	flags := log.LstdFlags | log.Lshortfile
	l := &Logger{
		loggers: make(map[LogLevel]*log.Logger, len(levelNames)),
		closer:  closer,
		level:   level,
	}
	for lvl, name := range levelNames {
		l.loggers[lvl] = log.New(w, "["+name+"] ", flags)
	}
	return l
}

// Close releases the rotated log file, if any.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) shouldLog(level LogLevel) bool {
	return level >= l.GetLevel()
}

// Logf writes a formatted message at level. calldepth counts frames above Logf.
func (l *Logger) Logf(calldepth int, level LogLevel, format string, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.loggers[level].Output(calldepth+2, fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.Logf(1, DEBUG, format, v...) }

// Infof logs a formatted info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.Logf(1, INFO, format, v...) }

// Warnf logs a formatted warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.Logf(1, WARN, format, v...) }

// Errorf logs a formatted error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.Logf(1, ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits the program.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.Logf(1, FATAL, format, v...) }

// Global convenience functions

func current() *Logger {
	instMu.RLock()
	defer instMu.RUnlock()
	return instance
}

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Logf(1, DEBUG, format, v...)
	}
}

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Logf(1, INFO, format, v...)
	}
}

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Logf(1, WARN, format, v...)
	}
}

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Logf(1, ERROR, format, v...)
	}
}

// Fatalf logs a formatted fatal-level message and exits the program using the global logger instance.
func Fatalf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Logf(1, FATAL, format, v...)
	}
	os.Exit(1)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	if l := current(); l != nil {
		l.SetLevel(level)
	}
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	if l := current(); l != nil {
		return l.GetLevel()
	}
	return INFO
}

// Printer adapts the global logger to the Printf interface expected by gorm.
type Printer LogLevel

// Printf writes through the global logger at the printer's level.
func (p Printer) Printf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Logf(1, LogLevel(p), format, v...)
	}
}
