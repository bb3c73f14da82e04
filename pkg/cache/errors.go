package cache

import "errors"

// ErrUnsupportedURL is returned by [Open] for URLs with an unknown scheme.
var ErrUnsupportedURL = errors.New("unsupported cache url")
