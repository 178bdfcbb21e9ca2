package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"tridraw/game"
	"tridraw/models"

	"gorm.io/datatypes"
)

// AuditStore persists terminal game facts. Implementations must tolerate
// being called concurrently.
type AuditStore interface {
	InsertCompletedGame(models.CompletedGame) error
	MarkPayoutProcessed(gameID string) error
	SavePayoutEntry(models.PayoutEntry) error
}

// Recorder keeps the completed-game records. The in-memory map is
// authoritative for the audit window and enforces the write-once rule: the
// first terminal transition for a game id wins, later ones are dropped.
// Database writes are fire-and-forget so the request path never waits on
// Postgres.
type Recorder struct {
	mu    sync.Mutex
	games map[string]*game.CompletedGame

	store AuditStore
	now   func() time.Time
}

func NewRecorder(store AuditStore) *Recorder {
	return &Recorder{
		games: make(map[string]*game.CompletedGame),
		store: store,
		now:   time.Now,
	}
}

// RecordCompleted stores the first terminal record for the game.
func (r *Recorder) RecordCompleted(rec game.CompletedGame) {
	r.mu.Lock()
	if _, ok := r.games[rec.GameID]; ok {
		r.mu.Unlock()
		return
	}
	cp := rec
	r.games[rec.GameID] = &cp
	r.mu.Unlock()

	if r.store == nil {
		return
	}
	go func() {
		handJSON, err := json.Marshal(rec.Hand)
		if err != nil {
			handJSON = []byte("[]")
		}
		row := models.CompletedGame{
			GameID:      rec.GameID,
			PlayerCode:  rec.PlayerCode,
			Outcome:     string(rec.Outcome),
			Combination: string(rec.Combination),
			Reward:      rec.Reward,
			Hand:        datatypes.JSON(handJSON),
			EndedAt:     rec.EndedAt,
		}
		if err := r.store.InsertCompletedGame(row); err != nil {
			log.Printf("❌ failed to persist completed game %s: %v", rec.GameID, err)
		}
	}()
}

// MarkPayoutProcessed flags the game's record once the ledger confirms the
// payout. The outcome itself is never rewritten.
func (r *Recorder) MarkPayoutProcessed(gameID string) {
	r.mu.Lock()
	if rec, ok := r.games[gameID]; ok {
		rec.PayoutProcessed = true
	}
	r.mu.Unlock()

	if r.store == nil {
		return
	}
	go func() {
		if err := r.store.MarkPayoutProcessed(gameID); err != nil {
			log.Printf("❌ failed to flag payout for game %s: %v", gameID, err)
		}
	}()
}

// Get returns a copy of the record for a game id.
func (r *Recorder) Get(gameID string) (game.CompletedGame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.games[gameID]
	if !ok {
		return game.CompletedGame{}, false
	}
	return *rec, true
}

// Prune drops in-memory records older than the audit window. Database rows
// have their own cleanup task.
func (r *Recorder) Prune(retention time.Duration) int {
	cutoff := r.now().Add(-retention)
	r.mu.Lock()
	defer r.mu.Unlock()
	pruned := 0
	for id, rec := range r.games {
		if rec.EndedAt.Before(cutoff) {
			delete(r.games, id)
			pruned++
		}
	}
	return pruned
}

// Len reports how many records are resident.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}
