// Package lock provides in-process mutual exclusion scoped by string keys.
package lock

import (
	"slices"
	"sync"
)

type refMutex struct {
	sync.Mutex
	refs int
}

// Keyed hands out one mutex per key and drops it once nobody holds or
// waits for it.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[string]*refMutex)}
}

// Lock acquires every key in sorted order, so two callers locking
// overlapping sets cannot deadlock. The returned func releases them all.
func (k *Keyed) Lock(keys ...string) (unlock func()) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*refMutex, 0, len(sorted))
	for _, key := range sorted {
		m := k.acquire(key)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
			k.release(sorted[i], held[i])
		}
	}
}

func (k *Keyed) acquire(key string) *refMutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	return m
}

func (k *Keyed) release(key string, m *refMutex) {
	k.mu.Lock()
	defer k.mu.Unlock()
	m.refs--
	if m.refs == 0 {
		delete(k.locks, key)
	}
}

func (k *Keyed) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
