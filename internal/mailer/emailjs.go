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

// EmailJS relays through a template mail API authenticated with a
// service/template/public/private key quadruple.
type EmailJS struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	BaseURL    string
	HTTPClient *http.Client
}

func NewEmailJS(serviceID, templateID, publicKey, privateKey, baseURL string) *EmailJS {
	return &EmailJS{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{
			Timeout: utils.MailRequestTimeout,
		},
	}
}

func (e *EmailJS) Send(ctx context.Context, msg *Message) error {
	if e.ServiceID == "" || e.TemplateID == "" || e.PublicKey == "" || e.PrivateKey == "" {
		return ErrMissingCredentials
	}

	payload := map[string]interface{}{
		"service_id":  e.ServiceID,
		"template_id": e.TemplateID,
		"user_id":     e.PublicKey,
		"accessToken": e.PrivateKey,
		"template_params": map[string]string{
			"from_name": msg.From,
			"to_email":  msg.To,
			"subject":   msg.Subject,
			"message":   msg.Text,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
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
