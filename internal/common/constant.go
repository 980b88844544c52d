// Package common contains shared constants, sentinel errors and byte helpers
// used across the studygroups client.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName carries a per-request uuid for server-side tracing.
	RequestIDHeaderName = "X-Request-ID"
	// DefaultNickname is reported by the credential store when none is saved.
	DefaultNickname = "guest"
)
