// Package payout holds the client side of the token-transfer boundary. The
// core never inspects transport detail; any failure here lands in the ledger
// as a terminal failed entry.
package payout

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRecipient = errors.New("INVALID_RECIPIENT")
	ErrAccountNotReady  = errors.New("ACCOUNT_NOT_READY")
	ErrTransferFailed   = errors.New("TRANSFER_FAILED")
)

// Gateway submits a payout and returns the transfer signature.
type Gateway interface {
	Submit(ctx context.Context, recipient, gameID string, amount decimal.Decimal) (string, error)
}
