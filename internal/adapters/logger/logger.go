// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/runway/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination, preserving the format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging, preserving the output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with l.mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log(slog.LevelInfo, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.log(slog.LevelWarn, msg)
}

// Error logs an error. Pretty output renders its zerr chain hierarchically.
func (l *Logger) Error(err error) {
	l.error(err)
}

// WithStage returns a logger whose records carry the pipeline stage. It
// follows later SetOutput and SetJSON calls on l.
func (l *Logger) WithStage(stage string) ports.Logger {
	return &stageLogger{base: l, attr: slog.String(StageKey, stage)}
}

func (l *Logger) log(level slog.Level, msg string, attrs ...slog.Attr) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l *Logger) error(err error, attrs ...slog.Attr) {
	if err == nil {
		return
	}

	msg := ""
	if l.isJSON() {
		msg = "operation failed"
	}
	l.log(slog.LevelError, msg, append(attrs, slog.Any(ErrorKey, err))...)
}

func (l *Logger) isJSON() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.jsonMode
}

type stageLogger struct {
	base *Logger
	attr slog.Attr
}

func (s *stageLogger) Info(msg string) { s.base.log(slog.LevelInfo, msg, s.attr) }

func (s *stageLogger) Warn(msg string) { s.base.log(slog.LevelWarn, msg, s.attr) }

func (s *stageLogger) Error(err error) { s.base.error(err, s.attr) }
