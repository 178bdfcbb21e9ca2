package services

import (
	"testing"
	"time"

	"tridraw/game"
)

func TestRecordCompletedWriteOnce(t *testing.T) {
	r := NewRecorder(nil)

	first := game.CompletedGame{
		GameID:     "g1",
		PlayerCode: "alice",
		Outcome:    game.OutcomeWin,
		Reward:     15,
		EndedAt:    time.Now(),
	}
	r.RecordCompleted(first)

	// A later terminal transition for the same game must not overwrite.
	r.RecordCompleted(game.CompletedGame{
		GameID:     "g1",
		PlayerCode: "alice",
		Outcome:    game.OutcomeTimeout,
		EndedAt:    time.Now(),
	})

	rec, ok := r.Get("g1")
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.Outcome != game.OutcomeWin || rec.Reward != 15 {
		t.Errorf("first terminal transition should win, got %+v", rec)
	}
	if r.Len() != 1 {
		t.Errorf("expected one record, got %d", r.Len())
	}
}

func TestMarkPayoutProcessed(t *testing.T) {
	r := NewRecorder(nil)
	r.RecordCompleted(game.CompletedGame{GameID: "g1", Outcome: game.OutcomeWin, EndedAt: time.Now()})

	r.MarkPayoutProcessed("g1")
	rec, _ := r.Get("g1")
	if !rec.PayoutProcessed {
		t.Error("expected payout_processed to be set")
	}

	// Unknown game id is a no-op.
	r.MarkPayoutProcessed("ghost")
}

func TestRecorderPrune(t *testing.T) {
	r := NewRecorder(nil)
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }

	r.RecordCompleted(game.CompletedGame{GameID: "old", Outcome: game.OutcomeLoss, EndedAt: base.Add(-8 * 24 * time.Hour)})
	r.RecordCompleted(game.CompletedGame{GameID: "fresh", Outcome: game.OutcomeWin, EndedAt: base.Add(-time.Hour)})

	if pruned := r.Prune(7 * 24 * time.Hour); pruned != 1 {
		t.Errorf("expected one pruned record, got %d", pruned)
	}
	if _, ok := r.Get("old"); ok {
		t.Error("old record should be gone")
	}
	if _, ok := r.Get("fresh"); !ok {
		t.Error("fresh record should survive")
	}
}
