// Package ledger is the idempotency guard around payout submission. One
// entry per (player, game) key, written before the external call goes out, is
// the single source of truth preventing double payment.
package ledger

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status of a ledger entry. A failed entry is terminal: recovery is an
// operational action, never an automatic retry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Gateway is the narrow boundary to the token-transfer layer.
type Gateway interface {
	Submit(ctx context.Context, recipient, gameID string, amount decimal.Decimal) (signature string, err error)
}

// Sink receives terminal entry states for audit persistence. Implementations
// must not block the caller.
type Sink interface {
	SaveEntry(Entry)
}

// Entry records one payout attempt for a (player, game) key.
type Entry struct {
	PlayerCode string
	GameID     string
	Recipient  string
	RefID      string
	Amount     decimal.Decimal
	Status     Status
	Signature  string
	LastError  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type key struct {
	playerCode string
	gameID     string
}

// Config wires a Ledger. Gateway is required; the rest default.
type Config struct {
	Gateway     Gateway
	Sink        Sink
	Now         func() time.Time
	CallTimeout time.Duration
}

// Ledger keeps the idempotency map. The check-then-pending sequence runs
// under one lock; the gateway call itself happens outside it so a slow
// transfer cannot stall other games.
type Ledger struct {
	mu      sync.Mutex
	entries map[key]*Entry

	gateway     Gateway
	sink        Sink
	now         func() time.Time
	callTimeout time.Duration
}

func New(cfg Config) *Ledger {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	return &Ledger{
		entries:     make(map[key]*Entry),
		gateway:     cfg.Gateway,
		sink:        cfg.Sink,
		now:         cfg.Now,
		callTimeout: cfg.CallTimeout,
	}
}

// RequestPayout submits at most one payout for the key. If any entry already
// exists, whatever its status, the call is a no-op returning that status. The
// pending entry is installed before the gateway is invoked, so two
// near-simultaneous completions of the same game cannot both pass the
// not-yet-requested test.
func (l *Ledger) RequestPayout(playerCode, gameID, recipient string, amount int64) Status {
	k := key{playerCode: playerCode, gameID: gameID}

	l.mu.Lock()
	if e, ok := l.entries[k]; ok {
		st := e.Status
		l.mu.Unlock()
		return st
	}
	now := l.now()
	e := &Entry{
		PlayerCode: playerCode,
		GameID:     gameID,
		Recipient:  recipient,
		RefID:      uuid.NewString(),
		Amount:     decimal.NewFromInt(amount),
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	l.entries[k] = e
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), l.callTimeout)
	defer cancel()
	sig, err := l.gateway.Submit(ctx, recipient, gameID, e.Amount)

	l.mu.Lock()
	if err != nil {
		e.Status = StatusFailed
		e.LastError = err.Error()
		log.Printf("❌ payout failed player=%s game=%s amount=%s: %v", playerCode, gameID, e.Amount, err)
	} else {
		e.Status = StatusCompleted
		e.Signature = sig
	}
	e.UpdatedAt = l.now()
	st := e.Status
	snapshot := *e
	l.mu.Unlock()

	if l.sink != nil {
		l.sink.SaveEntry(snapshot)
	}
	return st
}

// Get returns a copy of the entry for the key.
func (l *Ledger) Get(playerCode, gameID string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key{playerCode: playerCode, gameID: gameID}]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Prune drops settled entries older than the retention window. Pending
// entries are never pruned.
func (l *Ledger) Prune(retention time.Duration) int {
	cutoff := l.now().Add(-retention)
	l.mu.Lock()
	defer l.mu.Unlock()
	pruned := 0
	for k, e := range l.entries {
		if e.Status != StatusPending && e.UpdatedAt.Before(cutoff) {
			delete(l.entries, k)
			pruned++
		}
	}
	return pruned
}

// Len reports how many entries are resident.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
