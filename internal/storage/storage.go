// Package storage defines the Storage interface, a small string-keyed
// store that the session and employee stores persist into.
//
// WHY AN INTERFACE?
// ─────────────────
// The stores should not know or care where their bytes end up. By
// depending only on this interface:
//
//   - Production wires the SQLite backend (storage/sqlite), so state
//     survives a restart.
//
//   - Tests wire the in-memory backend (storage/memory). No database
//     file needed for unit tests.
//
// Each key holds one whole value. There are no partial writes: Set
// replaces the value in full, which is the entire durability contract the
// stores rely on.
package storage

import (
	"context"
	"errors"
)

// Keys of the two independent entries the application persists.
const (
	KeyAuthToken = "auth_token"
	KeyEmployees = "employees"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Storage is the persistence contract.
type Storage interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
