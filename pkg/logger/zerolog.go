package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the [log] section of the service configuration.
type Config struct {
	Level Level
	// FilePath enables a rotated JSON file next to the console output.
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Console    bool
	TimeFormat string
	// Redact masks contact data with ContactRedactor.
	Redact bool
}

type Option func(*zerologger)

// WithRedactor masks the fields named in r on every entry and on fields
// preset with With.
func WithRedactor(r Redactor) Option {
	return func(z *zerologger) {
		z.redact = r
	}
}

type zerologger struct {
	zl     zerolog.Logger
	redact Redactor
}

func New(cfg Config) Logger {
	if cfg.TimeFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	var opts []Option
	if cfg.Redact {
		opts = append(opts, WithRedactor(ContactRedactor()))
	}
	return build(sink(cfg), cfg.Level, opts...)
}

// NewWithWriter writes JSON entries to w.
func NewWithWriter(w io.Writer, level Level, opts ...Option) Logger {
	return build(w, level, opts...)
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &zerologger{zl: zerolog.Nop()}
}

func build(w io.Writer, level Level, opts ...Option) *zerologger {
	z := &zerologger{
		zl: zerolog.New(w).Level(zerologLevel(level)).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// sink combines the rotated file and the console writer. Without either,
// entries go to stderr as JSON.
func sink(cfg Config) io.Writer {
	var writers []io.Writer
	if cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat})
	}

	switch len(writers) {
	case 0:
		return os.Stderr
	case 1:
		return writers[0]
	}
	return zerolog.MultiLevelWriter(writers...)
}

func (z *zerologger) Debug(msg string, fields ...Fields) {
	z.write(z.zl.Debug(), msg, fields)
}

func (z *zerologger) Info(msg string, fields ...Fields) {
	z.write(z.zl.Info(), msg, fields)
}

func (z *zerologger) Warn(msg string, fields ...Fields) {
	z.write(z.zl.Warn(), msg, fields)
}

func (z *zerologger) Error(err error, fields ...Fields) {
	z.write(z.zl.Error().Err(err), "", fields)
}

func (z *zerologger) With(fields Fields) Logger {
	ctx := z.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, z.redact.apply(k, v))
	}
	return &zerologger{zl: ctx.Logger(), redact: z.redact}
}

func (z *zerologger) WithContext(ctx context.Context) Logger {
	return &zerologger{zl: z.zl.With().Ctx(ctx).Logger(), redact: z.redact}
}

// write is a no-op for levels below the threshold, where zerolog hands out
// a nil event.
func (z *zerologger) write(evt *zerolog.Event, msg string, fields []Fields) {
	if evt == nil {
		return
	}
	for _, f := range fields {
		for k, v := range f {
			evt.Interface(k, z.redact.apply(k, v))
		}
	}
	evt.Msg(msg)
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}
