package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogger stores the instance of the default logger
var DefaultLogger = NewLogger(os.Stderr)

// LogParams wrapper around key values used for logging
type LogParams map[string]interface{}

// Logger for logging
type Logger struct {
	entry *logrus.Entry
}

// NewLogger instantiates a text logger writing to out
func NewLogger(out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return FromLogrus(l)
}

// FromLogrus wraps an existing logrus logger
func FromLogrus(l *logrus.Logger) *Logger {
	return &Logger{
		entry: logrus.NewEntry(l),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(s string) {
	l.entry.Debug(s)
}

// Info logs a message with level `info`
func (l *Logger) Info(s string) {
	l.entry.Info(s)
}

// Warn logs a message with level `warning`
func (l *Logger) Warn(s string) {
	l.entry.Warn(s)
}

// Error logs a message with level `error`
func (l *Logger) Error(s string) {
	l.entry.Error(s)
}

// With returns a logger initialized with the parameters
func (l *Logger) With(params LogParams) *Logger {
	fields := logrus.Fields{}
	for k, v := range params {
		fields[k] = v
	}
	return &Logger{
		entry: l.entry.WithFields(fields),
	}
}

// SetLevel sets the level of the logger. Unknown levels are reported back.
func (l *Logger) SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(parsed)
	return nil
}
