// Package store provides the string key/value backends the wallet persists to.
// Two instances are used at runtime: a secure one holding salt and
// ciphertexts, and a plain one holding non-sensitive wallet metadata.
package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when the underlying storage cannot be reached
	// or a read/write against it fails.
	ErrUnavailable = errors.New("store unavailable")

	// ErrMissingKey is returned for operations called with an empty key.
	ErrMissingKey = errors.New("missing key")

	// ErrClosed is returned for operations on a closed store. It matches
	// ErrUnavailable.
	ErrClosed = fmt.Errorf("%w: store is closed", ErrUnavailable)
)

// KV is a durable string key/value store.
type KV interface {
	// Get returns the value stored for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// SetMany stores all entries atomically: either every entry is written or none.
	SetMany(ctx context.Context, entries map[string]string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

func validateEntries(entries map[string]string) error {
	for k := range entries {
		if k == "" {
			return ErrMissingKey
		}
	}

	return nil
}
