package gateway

import "errors"

var (
	// ErrNotFound is returned when the remote service has no such movie.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRating is returned when the remote service rejected a rating.
	ErrInvalidRating = errors.New("invalid rating")
)
