package logger

import (
	"context"
	"strings"
)

// Fields is an alias for structured logging fields
type Fields map[string]any

// Logger is the logging capability handed to services and handlers.
// Implementations mask contact data according to their Redactor.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	// Error logs err with an empty message.
	Error(err error, fields ...Fields)

	With(fields Fields) Logger
	WithContext(ctx context.Context) Logger
}

type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = map[string]Level{
	"debug":   DebugLevel,
	"info":    InfoLevel,
	"warn":    WarnLevel,
	"warning": WarnLevel,
	"error":   ErrorLevel,
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	}
	return "info"
}

// ParseLevel accepts the names used in the [log] config section. Anything
// unrecognised is info.
func ParseLevel(s string) Level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return InfoLevel
}
