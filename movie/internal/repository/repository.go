package repository

import "errors"

// ErrNotFound is returned when no movie matches the requested id.
var ErrNotFound = errors.New("not found")
