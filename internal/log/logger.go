// Package log wraps slog with a component field so every line identifies the
// subsystem that emitted it. The core engine packages do not log at all;
// only collaborator layers (services, storage, cmds) use this.
package log

import (
	"log/slog"
	"os"
)

// Logger carries a component name applied to every record.
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Handler   slog.Handler
}

// New creates a logger. A nil Handler falls back to a text handler on stdout
// at the configured level.
func New(cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	}
	component := cfg.Component
	if component == "" {
		component = "app"
	}
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// WithComponent returns a logger scoped to a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs the logger as the process-wide slog default.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
