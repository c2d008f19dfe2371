package dashboard

import "errors"

var (
	ErrSessionNotFound = errors.New("dashboard session not found")
	ErrTooManySessions = errors.New("too many open dashboard sessions")
)
