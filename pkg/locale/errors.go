package locale

import "errors"

// ErrInvalidTag is returned when a locale identifier cannot be parsed.
var ErrInvalidTag = errors.New("locale: invalid locale tag")
