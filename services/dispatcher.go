package services

import (
	"log"

	"tridraw/ledger"
)

// Dispatcher hands winning games to the reward ledger. Dispatch returns
// immediately; the gateway call and the bookkeeping run on their own
// goroutine so the HTTP response never waits on the wallet service.
type Dispatcher struct {
	Ledger   *ledger.Ledger
	Recorder *Recorder

	// MarkPaid flips the session's reward_paid flag on completion.
	MarkPaid func(gameID string)
}

func (d *Dispatcher) Dispatch(playerCode, gameID, recipient string, amount int64) {
	go func() {
		status := d.Ledger.RequestPayout(playerCode, gameID, recipient, amount)
		switch status {
		case ledger.StatusCompleted:
			if d.MarkPaid != nil {
				d.MarkPaid(gameID)
			}
			if d.Recorder != nil {
				d.Recorder.MarkPayoutProcessed(gameID)
			}
		case ledger.StatusFailed:
			log.Printf("⚠️  payout for game %s recorded as failed, manual review required", gameID)
		}
	}()
}
