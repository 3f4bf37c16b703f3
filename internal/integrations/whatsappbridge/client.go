package whatsappbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client enqueues messages on the external WhatsApp HTTP bridge.
// Session management lives entirely in the bridge; this client only
// hands messages over.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a WhatsApp bridge client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAppointmentConfirmation enqueues a booking confirmation message.
// Callers treat failures as non-fatal: a booking never fails because
// the bridge is down.
func (c *Client) SendAppointmentConfirmation(ctx context.Context, msg *ConfirmationMessage) error {
	if c.baseURL == "" {
		c.log.Info("WhatsApp bridge not configured, skipping confirmation for appointment=%d", msg.AppointmentID)
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/messages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBridgeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrBridgeUnavailable, resp.StatusCode, string(body))
	}

	c.log.Info("WhatsApp confirmation enqueued for appointment=%d", msg.AppointmentID)
	return nil
}
