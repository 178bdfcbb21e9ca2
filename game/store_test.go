package game

import (
	"errors"
	"sync"
	"testing"
)

// Two concurrent draws must never both advance the round counter from the
// same starting value.
func TestConcurrentDrawsNoLostUpdate(t *testing.T) {
	m, _, _, _ := newTestManager(t, Config{MaxRounds: 10})
	m.Start("alice", "")

	const draws = 5
	var wg sync.WaitGroup
	errs := make(chan error, draws)
	for i := 0; i < draws; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Draw("alice"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent draw failed: %v", err)
	}

	snap, _ := m.Status("alice")
	if snap.RoundsPlayed != draws {
		t.Errorf("expected %d rounds after %d concurrent draws, got %d", draws, draws, snap.RoundsPlayed)
	}
}

// Concurrent starts for the same player must admit exactly one session.
func TestConcurrentStartsAdmitOne(t *testing.T) {
	m, _, _, _ := newTestManager(t, Config{})

	const attempts = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Start("alice", "")
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			} else if !errors.Is(err, ErrSessionExists) {
				t.Errorf("unexpected start error: %v", err)
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("expected exactly one successful start, got %d", created)
	}
	if m.store.Len() != 1 {
		t.Errorf("expected one resident session, got %d", m.store.Len())
	}
}

func TestStoreRemoveIdentity(t *testing.T) {
	st := NewStore()
	old := &Session{gameID: "g1", playerCode: "alice"}
	st.Replace(old)

	fresh := &Session{gameID: "g2", playerCode: "alice"}
	st.Replace(fresh)

	// Removing the displaced session must not evict its replacement.
	if st.Remove(old) {
		t.Error("removing a displaced session should be a no-op")
	}
	if st.ByPlayer("alice") != fresh {
		t.Error("replacement session lost")
	}
	if st.ByGame("g1") != nil {
		t.Error("displaced session still reachable by game id")
	}
	if st.ByGame("g2") != fresh {
		t.Error("game index out of sync with player index")
	}

	if !st.Remove(fresh) {
		t.Error("expected removal of the current session to succeed")
	}
	if st.Len() != 0 {
		t.Errorf("expected empty store, got %d", st.Len())
	}
}
