package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WalletClient submits payouts to the wallet service over HTTP.
type WalletClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewWalletClient(baseURL, apiKey string) *WalletClient {
	return &WalletClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type transferRequest struct {
	Recipient string          `json:"recipient"`
	GameID    string          `json:"game_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type transferResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Signature string `json:"signature"`
	} `json:"data"`
}

// Submit posts the transfer and maps the wallet service's failure codes onto
// the gateway sentinels.
func (w *WalletClient) Submit(ctx context.Context, recipient, gameID string, amount decimal.Decimal) (string, error) {
	body, err := json.Marshal(transferRequest{
		Recipient: recipient,
		GameID:    gameID,
		Amount:    amount,
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/wallet/transfer", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.apiKey != "" {
		req.Header.Set("X-Api-Key", w.apiKey)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response failed: %v", ErrTransferFailed, err)
	}

	var parsed transferResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("%w: unexpected response: %s", ErrTransferFailed, string(respBytes))
	}

	if resp.StatusCode != http.StatusOK || !parsed.Success {
		switch {
		case strings.Contains(parsed.Message, "INVALID_RECIPIENT"):
			return "", ErrInvalidRecipient
		case strings.Contains(parsed.Message, "ACCOUNT_NOT_READY"):
			return "", ErrAccountNotReady
		default:
			return "", fmt.Errorf("%w: %s", ErrTransferFailed, parsed.Message)
		}
	}

	return parsed.Data.Signature, nil
}
