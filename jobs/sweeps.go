package jobs

import (
	"log"
	"time"

	"tridraw/config"
	"tridraw/database"
	"tridraw/game"
	"tridraw/ledger"
	"tridraw/services"
	"tridraw/task"
)

// StartSweepScheduler runs the two background passes: a frequent one for
// session timeouts and grace-window removal, and a slower one for inactivity
// reclamation and retention pruning.
func StartSweepScheduler(sv *game.Supervisor, led *ledger.Ledger, rec *services.Recorder, cfg config.Config) {
	tickerTimeout := time.NewTicker(cfg.TimeoutSweepInterval)
	go func() {
		for {
			<-tickerTimeout.C
			expired, removed := sv.SweepTimeouts()
			if expired > 0 || removed > 0 {
				log.Printf("🟡 timeout sweep: expired=%d removed=%d", expired, removed)
			}
		}
	}()

	tickerCleanup := time.NewTicker(cfg.CleanupSweepInterval)
	go func() {
		for {
			<-tickerCleanup.C
			stale := sv.SweepInactive()
			entries := led.Prune(cfg.LedgerRetention)
			records := rec.Prune(cfg.AuditRetention)
			if stale > 0 || entries > 0 || records > 0 {
				log.Printf("🟡 cleanup sweep: stale_sessions=%d ledger_entries=%d audit_records=%d", stale, entries, records)
			}
			if database.DB != nil {
				task.CleanupOldAuditRows(cfg.AuditRetention, cfg.LedgerRetention)
			}
		}
	}()
}
