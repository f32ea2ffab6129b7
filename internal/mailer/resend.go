package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"courtside/internal/utils"
)

// Resend relays through a single-API-key transactional mail HTTP API.
type Resend struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewResend(apiKey, baseURL string) *Resend {
	return &Resend{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: utils.MailRequestTimeout,
		},
	}
}

func (r *Resend) Send(ctx context.Context, msg *Message) error {
	if r.APIKey == "" {
		return ErrMissingCredentials
	}

	payload := map[string]interface{}{
		"from":    msg.From,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"text":    msg.Text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail API error (%d): %s", resp.StatusCode, string(upstream))
	}

	return nil
}
