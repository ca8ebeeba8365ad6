// Package service implements the persisted stores: each service owns one
// or two storage slots, keeps an in-memory snapshot of the decoded
// collection, and applies every mutation as a pure transform of the full
// collection followed by a single slot write. The slot is persisted
// before the snapshot is swapped, so a failed write never diverges
// in-memory state from storage.
package service

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/teka-app/teka/internal/storage"
)

// loadOrSeed reads a slot, installing and persisting the seed dataset when
// the slot is absent. Corrupt slot data is reset to the seed as well; only
// storage-level failures propagate.
func loadOrSeed[T any](slot storage.Slot[T], seed func() T, log zerolog.Logger) (T, error) {
	value, ok, err := slot.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSlot) {
			var zero T
			return zero, err
		}
		log.Warn().Err(err).Str("slot", slot.Key()).Msg("slot unreadable, resetting to seed data")
		ok = false
	}
	if !ok {
		value = seed()
		if err := slot.Save(value); err != nil {
			var zero T
			return zero, err
		}
	}
	return value, nil
}

type cloneable[T any] interface {
	Clone() T
}

func cloneAll[T cloneable[T]](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	return append([]string(nil), in...)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a millisecond-timestamp id. Two calls in the same
// millisecond still produce distinct, increasing ids.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
