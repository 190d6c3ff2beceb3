// Package sink delivers completed wishes to the spreadsheet webhook.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
)

// PlaceholderMarker marks a webhook URL that has not been configured yet.
const PlaceholderMarker = "PLACEHOLDER"

// Defaults for Config.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultDemoDelay = 1500 * time.Millisecond
)

// Config controls where and how wishes are posted.
type Config struct {
	URL       string
	Timeout   time.Duration
	DemoDelay time.Duration
}

// Webhook posts wishes as JSON. Delivery is fire-and-forget: the remote
// write cannot be confirmed, so only local dispatch failures are reported.
type Webhook struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// payload is the JSON body the spreadsheet script expects.
type payload struct {
	Timestamp     int64  `json:"timestamp"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Message       string `json:"message"`
}

// NewWebhook creates a Webhook sink. A nil logger uses slog.Default().
func NewWebhook(cfg Config, logger *slog.Logger) *Webhook {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DemoDelay < 0 {
		cfg.DemoDelay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Webhook{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
			// Apps Script answers a POST with a redirect to the script
			// output; the row is already written by then.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

// DemoMode reports whether the sink only logs submissions.
func (w *Webhook) DemoMode() bool {
	return w.cfg.URL == "" || strings.Contains(w.cfg.URL, PlaceholderMarker)
}

// Submit sends sub to the webhook. It returns true when the request was
// dispatched, false when it could not be sent.
func (w *Webhook) Submit(ctx context.Context, sub kiosk.WishSubmission) bool {
	body := payload{
		Timestamp:     sub.Timestamp.UnixMilli(),
		Name:          sub.Name,
		ContactNumber: sub.ContactNumber,
		Message:       sub.Message,
	}

	if w.DemoMode() {
		return w.simulate(ctx, body)
	}

	if err := w.post(ctx, body); err != nil {
		w.logger.Error("submitting wish to webhook", "error", err)
		return false
	}
	return true
}

func (w *Webhook) simulate(ctx context.Context, body payload) bool {
	w.logger.Warn("webhook not configured, running in demo mode",
		"timestamp", body.Timestamp,
		"name", body.Name,
		"contact_number", body.ContactNumber,
		"message", body.Message,
	)

	t := time.NewTimer(w.cfg.DemoDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
	return true
}

func (w *Webhook) post(ctx context.Context, body payload) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal wish: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("post wish: %w", err)
	}
	// The response is opaque to us; drain it so the connection is reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		w.logger.Warn("closing webhook response body", "error", err)
	}

	w.logger.Debug("wish dispatched",
		"status_code", resp.StatusCode,
		"duration", time.Since(start),
	)
	return nil
}
