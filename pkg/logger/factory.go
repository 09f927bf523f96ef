package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the logger factory.
type Option func(*config)

type config struct {
	out   io.Writer
	level slog.Level
	json  bool
}

// WithOutput redirects log output. Defaults to os.Stderr, keeping build
// diagnostics out of a host pipeline's stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithDebug lowers the log level to Debug.
func WithDebug() Option {
	return func(c *config) {
		c.level = slog.LevelDebug
	}
}

// WithJSON switches from the human-readable text handler to JSON output.
func WithJSON() Option {
	return func(c *config) {
		c.json = true
	}
}

// New creates a logger for build-pipeline diagnostics.
// Text format at Info level by default.
func New(opts ...Option) *slog.Logger {
	c := &config{
		out:   os.Stderr,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(c)
	}

	ho := &slog.HandlerOptions{Level: c.level}
	if c.json {
		return slog.New(slog.NewJSONHandler(c.out, ho))
	}
	return slog.New(slog.NewTextHandler(c.out, ho))
}
