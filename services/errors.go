package services

import "errors"

// Every failure the RSVP path can hit is a distinct named condition; the
// handler maps them to HTTP statuses. Nothing here is retried or defaulted.
var (
	ErrMissingToken   = errors.New("token required")
	ErrInvalidChoice  = errors.New("invalid availability option")
	ErrPlayerNotFound = errors.New("player not found")
	ErrStoreWrite     = errors.New("failed to record response")
)
