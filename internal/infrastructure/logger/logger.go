package logger

import (
	"io"
	"log/slog"
	"os"

	ports "blog-admin-service/internal/domain/ports/output"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"
)

type Logger struct {
	*slog.Logger
}

// New builds a text logger for local environments and a JSON logger otherwise.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler
	switch env {
	case envDev, envTest:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &Logger{Logger: slog.New(handler)}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
