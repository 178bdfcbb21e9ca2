package task

import (
	"log"
	"time"

	"tridraw/database"
	"tridraw/models"
)

// CleanupOldAuditRows deletes completed-game rows past the audit window and
// settled payout rows past the ledger retention window.
func CleanupOldAuditRows(auditRetention, ledgerRetention time.Duration) {
	gameCutoff := time.Now().Add(-auditRetention)
	result := database.DB.
		Where("ended_at < ?", gameCutoff).
		Delete(&models.CompletedGame{})
	if result.Error != nil {
		log.Println("❌ Failed to delete old completed games:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d completed games older than %s\n", result.RowsAffected, auditRetention)
	}

	payoutCutoff := time.Now().Add(-ledgerRetention)
	result = database.DB.
		Where("updated_at < ? AND status <> ?", payoutCutoff, "pending").
		Delete(&models.PayoutEntry{})
	if result.Error != nil {
		log.Println("❌ Failed to delete old payout entries:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d payout entries older than %s\n", result.RowsAffected, ledgerRetention)
	}
}
