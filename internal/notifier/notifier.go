// Package notifier delivers best-effort admin notifications to the bot service.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"spaceshooter/backend/internal/access"
)

const requestTimeout = 5 * time.Second

// BotNotifier posts new-request notifications to the bot's internal endpoint.
// Every failure is logged and swallowed: notification delivery must never fail
// or roll back the action that triggered it.
type BotNotifier struct {
	baseURL       string
	internalToken string
	client        *http.Client
	logger        *slog.Logger
}

// New creates a BotNotifier. With an empty internal token the notifier is
// disabled and every call is a no-op.
func New(baseURL, internalToken string, logger *slog.Logger) *BotNotifier {
	return &BotNotifier{
		baseURL:       baseURL,
		internalToken: internalToken,
		client:        &http.Client{Timeout: requestTimeout},
		logger:        logger,
	}
}

// Ensure BotNotifier implements the access interface
var _ access.Notifier = (*BotNotifier)(nil)

// NotifyNewRequest posts the payload to {baseURL}/internal/new-request.
func (n *BotNotifier) NotifyNewRequest(ctx context.Context, notification access.NewRequestNotification) {
	if n.internalToken == "" {
		return
	}

	body, err := json.Marshal(notification)
	if err != nil {
		n.logger.Warn("failed to encode bot notification", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/internal/new-request", bytes.NewReader(body))
	if err != nil {
		n.logger.Warn("failed to build bot notification request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Token", n.internalToken)

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("failed to notify bot service", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		n.logger.Warn("bot service rejected notification", "error", fmt.Sprintf("status %d", resp.StatusCode))
	}
}
