package domain

import "errors"

// ErrNotFound is returned when a referenced record does not exist,
// e.g. a shift or attendance write naming an unknown volunteer id.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request fails validation
// (empty name, non-positive hours, malformed date).
var ErrInvalidInput = errors.New("invalid input")
