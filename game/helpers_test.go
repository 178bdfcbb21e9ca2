package game

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type dispatchCall struct {
	playerCode string
	gameID     string
	recipient  string
	amount     int64
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []dispatchCall
}

func (d *fakeDispatcher) Dispatch(playerCode, gameID, recipient string, amount int64) {
	d.mu.Lock()
	d.calls = append(d.calls, dispatchCall{playerCode, gameID, recipient, amount})
	d.mu.Unlock()
}

func (d *fakeDispatcher) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []CompletedGame
}

func (r *fakeRecorder) RecordCompleted(rec CompletedGame) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

func (r *fakeRecorder) byGame(gameID string) (CompletedGame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.GameID == gameID {
			return rec, true
		}
	}
	return CompletedGame{}, false
}

func newTestManager(t *testing.T, cfg Config) (*Manager, *fakeClock, *fakeDispatcher, *fakeRecorder) {
	t.Helper()
	clock := newFakeClock()
	dispatcher := &fakeDispatcher{}
	recorder := &fakeRecorder{}
	return NewManager(cfg, clock, dispatcher, recorder), clock, dispatcher, recorder
}
