package logging

import (
	"context"
	"log/slog"
)

// SlogLogger satisfies Logger on top of log/slog. Children created by With
// share the parent's handler, so one configured sink serves the whole
// process.
type SlogLogger struct {
	log *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger wraps an already-configured slog logger. Handler choice
// (JSON, text, level) stays with the caller.
func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log}
}

func (s *SlogLogger) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	s.log.Log(ctx, level, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelInfo, msg, args)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelWarn, msg, args)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelError, msg, args)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{log: s.log.With(args...)}
}
