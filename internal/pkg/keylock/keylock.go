// Package keylock provides per-key mutual exclusion. The booking flow needs
// check-then-insert to be atomic per field: two near-simultaneous requests
// for the same slot must not both pass the conflict check.
package keylock

import (
	"sync"

	"github.com/google/uuid"
)

type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[uuid.UUID]*entry)}
}

// Lock acquires the mutex for key and returns its unlock function. Entries
// are reference-counted so the map does not grow with every field ever seen.
func (k *KeyedMutex) Lock(key uuid.UUID) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
