package geomcore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific context. This provides
// structured logging with consistent field names across solve runs.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithUnknowns adds the system dimension field to the logger.
func (l *Logger) WithUnknowns(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("unknowns", n),
	}
}

// WithIteration adds an iteration field to the logger.
func (l *Logger) WithIteration(i int) *Logger {
	return &Logger{
		Logger: l.Logger.With("iteration", i),
	}
}

// LogIteration logs one Newton step.
func (l *Logger) LogIteration(iteration int, residual float64) {
	l.Debug("newton step",
		"iteration", iteration,
		"residual", residual,
	)
}

// LogSolve logs the outcome of a solve run.
func (l *Logger) LogSolve(unknowns, iterations int, residual float64, err error) {
	if err != nil {
		l.Error("solve failed",
			"unknowns", unknowns,
			"iterations", iterations,
			"residual", residual,
			"error", err,
		)
	} else {
		l.Debug("solve completed",
			"unknowns", unknowns,
			"iterations", iterations,
			"residual", residual,
		)
	}
}
