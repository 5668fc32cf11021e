package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is the interface for logging.
type Logger interface {
	// Printf prints a formated message to the log.
	Printf(format string, v ...interface{})

	// Print prints a message to the log.
	Print(v ...interface{})

	// Fatalf
	Fatalf(format string, v ...interface{})

	// Fatal
	Fatal(v ...interface{})

	// Level returns the logging level.
	Level() Level
}

// Level represents the log level.
type Level int

const (
	// DebugLevel represents the debug-level.
	DebugLevel Level = iota
	// InfoLevel represents the info-level.
	InfoLevel
	// ErrorLevel represents the error-level.
	ErrorLevel
	// DisabledLevel represents that the logger is disabled.
	DisabledLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case ErrorLevel:
		return "error"
	case DisabledLevel:
		return "disabled"
	}
	return "unknown"
}

func (l Level) logrus() logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	}
	return logrus.ErrorLevel
}

var (
	// Debug is a debug-level logger.
	Debug = &logger{DebugLevel}
	// Info is an info-level logger.
	Info = &logger{InfoLevel}
	// Error is an error-level logger.
	Error = &logger{ErrorLevel}
)

var mu sync.RWMutex

var currentLogger = newDefaultLogger(os.Stderr)

func newDefaultLogger(w io.Writer) *defaultLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &defaultLogger{level: InfoLevel, Logger: l}
}

type logger struct {
	level Level
}

func getCurrentLogger() *defaultLogger {
	mu.RLock()
	defer mu.RUnlock()
	return currentLogger
}

func (l logger) enabled(c *defaultLogger) bool {
	return c.Level() != DisabledLevel && l.level >= c.Level()
}

func (l logger) Printf(format string, v ...interface{}) {
	cLogger := getCurrentLogger()
	if l.enabled(cLogger) {
		cLogger.Logf(l.level.logrus(), format, v...)
	}
}

func (l logger) Print(v ...interface{}) {
	cLogger := getCurrentLogger()
	if l.enabled(cLogger) {
		cLogger.Log(l.level.logrus(), v...)
	}
}

// Fatalf logs regardless of the current level and exits.
func (l logger) Fatalf(format string, v ...interface{}) {
	getCurrentLogger().Fatalf(format, v...)
}

// Fatal logs regardless of the current level and exits.
func (l logger) Fatal(v ...interface{}) {
	getCurrentLogger().Fatal(v...)
}

func (l logger) Level() Level {
	return l.level
}

type defaultLogger struct {
	level Level
	*logrus.Logger
}

func (l *defaultLogger) Level() Level {
	return l.level
}

// SetLevel sets the current logging level.
func SetLevel(level Level) {
	mu.Lock()
	currentLogger.level = level
	currentLogger.Logger.SetLevel(level.logrus())
	mu.Unlock()
}

// SetLevelByName sets the current logging level with a name.
func SetLevelByName(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		SetLevel(DebugLevel)
	case "info":
		SetLevel(InfoLevel)
	case "error":
		SetLevel(ErrorLevel)
	case "disabled":
		SetLevel(DisabledLevel)
	default:
		return errors.Errorf("unknown log level %q", level)
	}
	return nil
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	currentLogger.Logger.SetOutput(w)
	mu.Unlock()
}

// CurrentLevel returns the current logging level.
func CurrentLevel() Level {
	return getCurrentLogger().Level()
}
