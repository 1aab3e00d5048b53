package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/6610685031/cn331-project-budgy/internal/config"
)

const mailerSendURL = "https://api.mailersend.com/v1/email"

// Sender delivers plain-text mail. The password-reset flow is the
// only consumer.
type Sender interface {
	Send(to, subject, text string) error
}

// MailerSend posts mail to the MailerSend HTTP API.
type MailerSend struct {
	APIKey    string
	FromEmail string
	FromName  string
	Client    *http.Client
}

func NewMailerSend(cfg config.MailConfig) *MailerSend {
	return &MailerSend{
		APIKey:    cfg.APIKey,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendReq struct {
	From    address   `json:"from"`
	To      []address `json:"to"`
	Subject string    `json:"subject"`
	Text    string    `json:"text"`
}

func (m *MailerSend) Send(to, subject, text string) error {
	body, err := json.Marshal(sendReq{
		From:    address{Email: m.FromEmail, Name: m.FromName},
		To:      []address{{Email: to}},
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("encode mail: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, mailerSendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("send mail: unexpected status %d", resp.StatusCode)
	}
	return nil
}
