// Package logger provides slog logger factories for build-pipeline
// diagnostics: a configurable text/JSON logger and a no-op logger used as
// the silent default.
package logger
