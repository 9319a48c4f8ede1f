// ABOUTME: Standard logger implementation backed by sirupsen/logrus
// ABOUTME: Provides leveled structured logging to stdout or a rotating file

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a StandardLogger
type Options struct {
	// Level is debug, info, warn or error. Unknown levels mean info.
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, sends output to a rotating log file instead of stdout
	File string

	// Output replaces stdout when File is empty
	Output io.Writer
}

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a new standard logger
func NewStandardLogger(opts Options) *StandardLogger {
	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.File != "" {
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	return newLogger(out, opts)
}

func newLogger(out io.Writer, opts Options) *StandardLogger {
	l := logrus.New()
	l.SetOutput(out)

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if opts.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &StandardLogger{log: l}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Error(msg)
}
