// Package prefs is the client's local key/value preference table.
package prefs

import "context"

// Repository stores opaque byte values under string keys.
// Get returns (nil, nil) for a missing key and a non-nil empty slice for a
// key stored with an empty value.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
