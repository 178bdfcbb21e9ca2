package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompletedGame is the durable audit row for a finished game. One row per
// game id; the unique index backs the write-once rule.
type CompletedGame struct {
	gorm.Model

	GameID      string `gorm:"size:36;uniqueIndex"`
	PlayerCode  string `gorm:"size:64;index"`
	Outcome     string `gorm:"size:16;index"`
	Combination string `gorm:"size:24"`
	Reward      int64

	Hand datatypes.JSON `gorm:"type:jsonb"`

	EndedAt         time.Time `gorm:"index"`
	PayoutProcessed bool
}
