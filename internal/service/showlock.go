package service

import "sync"

// ShowLocks serializes the read-check-write sections of reserve and
// finalize per show.  The availability check and the hold insert are two
// storage operations; without serialization two sessions could both pass
// the check before either writes.  One mutex per show keeps unrelated
// shows fully concurrent.  Locks are never removed – the map is bounded
// by the show catalog, which is small and append-only.
type ShowLocks struct {
    mu    sync.Mutex
    locks map[uint64]*sync.Mutex
}

// NewShowLocks returns an empty lock table.
func NewShowLocks() *ShowLocks {
    return &ShowLocks{locks: make(map[uint64]*sync.Mutex)}
}

// Lock acquires the mutex for a show and returns the matching unlock
// function, intended for use as `defer locks.Lock(showID)()`.
func (l *ShowLocks) Lock(showID uint64) func() {
    l.mu.Lock()
    m, ok := l.locks[showID]
    if !ok {
        m = &sync.Mutex{}
        l.locks[showID] = m
    }
    l.mu.Unlock()

    m.Lock()
    return m.Unlock
}
