package services

import (
	"log"

	"tridraw/ledger"
	"tridraw/models"

	"gorm.io/gorm"
)

// GormAuditStore writes audit rows to Postgres.
type GormAuditStore struct {
	DB *gorm.DB
}

func (s *GormAuditStore) InsertCompletedGame(row models.CompletedGame) error {
	return s.DB.Create(&row).Error
}

func (s *GormAuditStore) MarkPayoutProcessed(gameID string) error {
	return s.DB.Model(&models.CompletedGame{}).
		Where("game_id = ?", gameID).
		Update("payout_processed", true).Error
}

func (s *GormAuditStore) SavePayoutEntry(row models.PayoutEntry) error {
	return s.DB.Create(&row).Error
}

// LedgerSink adapts the audit store to the ledger's sink interface. Writes
// are best-effort and asynchronous; the in-memory ledger stays authoritative
// for idempotency.
type LedgerSink struct {
	Store AuditStore
}

func (s *LedgerSink) SaveEntry(e ledger.Entry) {
	if s.Store == nil {
		return
	}
	go func() {
		row := models.PayoutEntry{
			PlayerCode: e.PlayerCode,
			GameID:     e.GameID,
			Recipient:  e.Recipient,
			RefID:      e.RefID,
			Amount:     e.Amount,
			Status:     string(e.Status),
			Signature:  e.Signature,
			LastError:  e.LastError,
		}
		if err := s.Store.SavePayoutEntry(row); err != nil {
			log.Printf("❌ failed to persist ledger entry for game %s: %v", e.GameID, err)
		}
	}()
}
