package core

import "errors"

// Error kinds. Concrete errors wrap one of these so callers can classify a
// failure with errors.Is. None of them is retried.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrTransport     = errors.New("transport error")
	ErrDataShape     = errors.New("unexpected response shape")
)
