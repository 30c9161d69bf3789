package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for development.
	FormatText Format = "text"
)

// Config holds logger settings, loadable from the environment.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text, json
}

type config struct {
	level   slog.Level
	format  Format
	output  io.Writer
	service string
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output format. An unknown format panics: a
// misconfigured logger should stop startup, not fail at runtime.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination; nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithService tags every record with a "service" attribute.
func WithService(name string) Option {
	return func(c *config) { c.service = name }
}

// New builds a slog.Logger. Defaults: info level, text format, stderr.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	log := slog.New(handler)
	if cfg.service != "" {
		log = log.With(slog.String("service", cfg.service))
	}
	return log
}

// NewFromConfig builds a logger from environment-shaped settings; unknown
// level or format strings fall back to the defaults rather than failing.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := make([]Option, 0, 2+len(opts))
	configOpts = append(configOpts, WithLevel(parseLevel(cfg.Level)))
	switch Format(strings.ToLower(cfg.Format)) {
	case FormatJSON:
		configOpts = append(configOpts, WithFormat(FormatJSON))
	default:
		configOpts = append(configOpts, WithFormat(FormatText))
	}
	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
