package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Slot is a typed view over one store key, handling JSON (de)serialization.
// The persisted shape is exactly the serialized form of T.
type Slot[T any] struct {
	store Store
	key   string
}

func NewSlot[T any](store Store, key string) Slot[T] {
	return Slot[T]{store: store, key: key}
}

// Key returns the slot's storage key.
func (s Slot[T]) Key() string { return s.key }

// Load reads and decodes the slot. The second return is false when the
// slot has never been written. Decode failures wrap ErrCorruptSlot.
func (s Slot[T]) Load() (T, bool, error) {
	var value T
	raw, err := s.store.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrNoSlot) {
			return value, false, nil
		}
		return value, false, err
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("%w: slot %q: %v", ErrCorruptSlot, s.key, err)
	}
	return value, true, nil
}

// Save encodes value and replaces the slot contents.
func (s Slot[T]) Save(value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", s.key, err)
	}
	return s.store.Put(s.key, raw)
}

// Clear removes the slot entirely.
func (s Slot[T]) Clear() error {
	return s.store.Delete(s.key)
}
