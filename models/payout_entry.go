package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayoutEntry mirrors a settled reward-ledger entry for operator inspection.
// Failed payouts are never retried automatically, so this table is the
// starting point for manual recovery.
type PayoutEntry struct {
	gorm.Model

	PlayerCode string `gorm:"size:64;index:idx_player_game,unique"`
	GameID     string `gorm:"size:36;index:idx_player_game,unique"`
	Recipient  string `gorm:"size:128"`
	RefID      string `gorm:"size:36;uniqueIndex"`

	Amount decimal.Decimal `gorm:"type:numeric(10,2);default:0"`

	Status    string `gorm:"size:16;index"`
	Signature string `gorm:"size:128"`
	LastError string `gorm:"size:255"`
}
