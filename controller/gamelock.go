package controller

import "sync"

// gameLocks serializes event writers per game id. Derived counters are
// computed by counting the rows already in the store, so two concurrent
// submissions for the same game could otherwise read the same count before
// either write lands. Holding the game's lock across the read-count and the
// insert closes that race for this process; a second scorekeeper process
// pointed at the same store would reopen it.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for gameID, creating it on first use. Locks are
// never removed; a season has a few hundred games at most.
func (g *gameLocks) Lock(gameID string) {
	g.mu.Lock()
	l, ok := g.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[gameID] = l
	}
	g.mu.Unlock()

	l.Lock()
}

func (g *gameLocks) Unlock(gameID string) {
	g.mu.Lock()
	l := g.locks[gameID]
	g.mu.Unlock()

	l.Unlock()
}
