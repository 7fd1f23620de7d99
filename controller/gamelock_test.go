package controller

import (
	"sync"
	"testing"
)

func TestGameLocks_serializesSameGame(t *testing.T) {
	locks := newGameLocks()

	const writers = 20
	counter := 0
	wg := &sync.WaitGroup{}
	wg.Add(writers)

	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			locks.Lock("G1")
			defer locks.Unlock("G1")
			counter++
		}()
	}
	wg.Wait()

	if counter != writers {
		t.Errorf("expected %d increments, got %d", writers, counter)
	}
}

func TestGameLocks_independentGames(t *testing.T) {
	locks := newGameLocks()

	locks.Lock("G1")
	defer locks.Unlock("G1")

	done := make(chan struct{})
	go func() {
		locks.Lock("G2")
		locks.Unlock("G2")
		close(done)
	}()

	// Holding G1 must not block a writer for G2.
	<-done
}
