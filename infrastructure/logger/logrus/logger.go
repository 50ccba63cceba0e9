// ABOUTME: Logrus implementation of the Logger interface with structured fields
// ABOUTME: Supports JSON output and optional rotating file logging via lumberjack

package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	// Level is the minimum level to emit (debug/info/warn/error)
	Level string

	// File is an optional log file path; when set, output rotates
	// there instead of going to stdout
	File string
}

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a new logrus-backed logger
func NewLogrusLogger(cfg Config) *LogrusLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	var output io.Writer = os.Stdout
	if cfg.File != "" {
		output = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	log.SetOutput(output)

	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
