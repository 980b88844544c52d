package common

import "errors"

var (
	// ErrNotFound is returned by local lookups that found nothing.
	ErrNotFound = errors.New("not found")

	// ErrNotLoggedIn means an operation needs a stored token and there is none.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrTokenExpired means the stored token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidToken means the stored token could not be parsed as a JWT.
	ErrInvalidToken = errors.New("invalid token")
)
