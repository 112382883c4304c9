// ABOUTME: Logger implementation backed by logrus with optional rotating file output
// ABOUTME: Adapts the core Logger interface to logrus structured fields

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error; unknown values mean info
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, receives the log through a rotating writer in
	// addition to stdout
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays tune file rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger from options
func New(opts Options) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 500), // megabytes
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28), // days
		})
	}
	l.SetOutput(out)

	return &Logger{entry: l}
}

// NewWithWriter creates a logger writing JSON to w, for tests and tools
func NewWithWriter(w io.Writer, level string) *Logger {
	l := New(Options{Level: level, Format: "json"})
	l.entry.SetOutput(w)
	return l
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
