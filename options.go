package localepack

import (
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/localepack/pkg/cache"
)

// Option configures a Session during construction.
type Option func(*Session)

// WithDataRoot sets the path of the locale-data installation (the ilib
// root). Defaults to the ILIB_ROOT environment variable, then
// ./node_modules/ilib.
func WithDataRoot(path string) Option {
	return func(s *Session) {
		if path != "" {
			s.dataRoot = path
		}
	}
}

// WithDataFS injects the locale-data tree directly as an fs.FS, bypassing
// filesystem discovery. Useful for embedded data and tests.
func WithDataFS(fsys fs.FS) Option {
	return func(s *Session) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// WithOutputDir sets the directory bundles and manifests are written to.
// Defaults to "assets".
func WithOutputDir(dir string) Option {
	return func(s *Session) {
		if dir != "" {
			s.outDir = dir
		}
	}
}

// WithCompilation sets the compilation mode of the locale-data
// installation, which selects the fragment subtree. Defaults to
// "uncompiled".
func WithCompilation(mode string) Option {
	return func(s *Session) {
		if mode != "" {
			s.compilation = mode
		}
	}
}

// WithLocales sets the default target locales used when Emit or Prepare is
// called with an empty list.
func WithLocales(locales ...string) Option {
	return func(s *Session) {
		if len(locales) > 0 {
			s.locales = locales
		}
	}
}

// WithLogger sets the session logger. If not set, logging is disabled
// unless WithDebug is given.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDebug enables diagnostic logging.
func WithDebug() Option {
	return func(s *Session) {
		s.debug = true
	}
}

// WithTableCache injects the cache used for parsed lookup tables. By
// default the session owns a private in-memory cache; sharing one lets
// several sessions over the same installation reuse parsed tables.
func WithTableCache(c cache.Cache[map[string][]string]) Option {
	return func(s *Session) {
		if c != nil {
			s.tables = c
		}
	}
}
