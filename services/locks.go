package services

import (
	"context"
	"sync"
)

// tournamentLocks hands out one exclusive slot per tournament id. Entries are
// reference counted and dropped once nobody holds or waits for them.
type tournamentLocks struct {
	mu      sync.Mutex
	entries map[int]*lockEntry
}

type lockEntry struct {
	slot chan struct{}
	refs int
}

func newTournamentLocks() *tournamentLocks {
	return &tournamentLocks{entries: make(map[int]*lockEntry)}
}

// lock blocks until the tournament slot is free or ctx is done.
func (l *tournamentLocks) lock(ctx context.Context, tournamentID int) (func(), error) {
	l.mu.Lock()
	entry, ok := l.entries[tournamentID]
	if !ok {
		entry = &lockEntry{slot: make(chan struct{}, 1)}
		l.entries[tournamentID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.slot <- struct{}{}:
	case <-ctx.Done():
		l.release(tournamentID, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.slot
			l.release(tournamentID, entry)
		})
	}, nil
}

func (l *tournamentLocks) release(tournamentID int, entry *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, tournamentID)
	}
}

func (l *tournamentLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
