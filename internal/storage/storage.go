// Package storage provides the slot store backing every persisted
// collection: a flat namespace of string keys holding JSON blobs, the
// durable analog of the browser's local storage.
package storage

import "errors"

// ErrNoSlot is returned by Get when the key has never been written.
// Absence is the expected first-run condition, not a fault.
var ErrNoSlot = errors.New("storage: slot not found")

// ErrCorruptSlot wraps decode failures on persisted data so callers can
// apply a uniform recovery policy.
var ErrCorruptSlot = errors.New("storage: slot data corrupt")

// Store is a named unit of persistent storage. Implementations must make
// Put atomic per key: a reader observes either the old or the new value.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
