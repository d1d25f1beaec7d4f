package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured log fields.
type Fields map[string]any

// Logger is the logging interface used across the application.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

var root = newRoot()

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel configures the global log level from a string (debug, info, warn, error).
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		root.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		root.SetLevel(logrus.WarnLevel)
	case "error":
		root.SetLevel(logrus.ErrorLevel)
	default:
		root.SetLevel(logrus.InfoLevel)
	}
}

// NewDefaultLogger returns a logger with no preset fields.
func NewDefaultLogger() Logger {
	return &logrusLogger{entry: logrus.NewEntry(root)}
}

// WithFields returns a logger carrying the given fields.
func WithFields(fields Fields) Logger {
	return &logrusLogger{entry: root.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) withExtra(fields []Fields) *logrus.Entry {
	entry := l.entry
	for _, f := range fields {
		entry = entry.WithFields(logrus.Fields(f))
	}
	return entry
}

func (l *logrusLogger) Debug(msg string, fields ...Fields) {
	l.withExtra(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...Fields) {
	l.withExtra(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...Fields) {
	l.withExtra(fields).Warn(msg)
}

func (l *logrusLogger) Error(err error, msg string, fields ...Fields) {
	entry := l.withExtra(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
