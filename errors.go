package localepack

import "errors"

var (
	// ErrNoDataRoot is returned when the locale-data installation cannot
	// be located. This is the one structural failure that aborts a pass.
	ErrNoDataRoot = errors.New("localepack: locale data root not found")

	// ErrInvalidLocale is returned when a requested locale identifier
	// cannot be parsed.
	ErrInvalidLocale = errors.New("localepack: invalid locale")

	// ErrNoLocales is returned when an emission pass is triggered without
	// any target locales.
	ErrNoLocales = errors.New("localepack: no locales given")

	// ErrInvalidConfig is returned when a config file cannot be read or
	// parsed.
	ErrInvalidConfig = errors.New("localepack: invalid config file")

	// ErrEmitting is returned when an emission pass is triggered while
	// another pass is still running. The engine is synchronous by
	// contract; overlapping passes indicate a host integration bug.
	ErrEmitting = errors.New("localepack: emission pass already running")
)
