// Package push delivers session reminders to user devices. The Expo
// dispatcher is the production path; the log dispatcher backs local
// development and tests.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"glowtrack/internal/domain/notification"
	"glowtrack/internal/shared/config"
	"glowtrack/internal/shared/logger"
)

const (
	defaultExpoEndpoint = "https://exp.host/--/api/v2/push/send"
	defaultTimeout      = 10 * time.Second
	// Maximum response body size for the push API (64KB)
	maxPushResponseSize = 64 << 10
)

// expoMessage is the Expo push API request body.
type expoMessage struct {
	To    string `json:"to"`
	Sound string `json:"sound"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Badge int    `json:"badge"`
}

// expoResponse is the subset of the Expo response we inspect.
type expoResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// ExpoDispatcher sends notifications through the Expo push service.
type ExpoDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Interface
}

// NewExpoDispatcher creates a new ExpoDispatcher from config.
func NewExpoDispatcher(cfg *config.PushConfig, log logger.Interface) *ExpoDispatcher {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultExpoEndpoint
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &ExpoDispatcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

var _ notification.Dispatcher = (*ExpoDispatcher)(nil)

// Deliver sends one push message. delivered is false when Expo accepts
// the request but reports a per-message error such as an unregistered
// device token.
func (d *ExpoDispatcher) Deliver(ctx context.Context, token, title, body string) (bool, error) {
	payload, err := json.Marshal(expoMessage{
		To:    token,
		Sound: "default",
		Title: title,
		Body:  body,
		Badge: 1,
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPushResponseSize))
	if err != nil {
		return false, fmt.Errorf("failed to read push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("push service returned status %d: %s", resp.StatusCode, raw)
	}

	var parsed expoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return false, fmt.Errorf("failed to decode push response: %w", err)
	}
	if parsed.Data.Status != "ok" {
		d.logger.Warnw("push rejected by provider",
			"status", parsed.Data.Status,
			"message", parsed.Data.Message,
		)
		return false, nil
	}

	return true, nil
}
