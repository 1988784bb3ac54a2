package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"
)

const resendAPI = "https://api.resend.com/emails"

type attachment struct {
	Filename string `json:"filename"`
	// Resend ожидает содержимое в base64.
	Content string `json:"content"`
}

type resendEmail struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []attachment `json:"attachments,omitempty"`
}

// ResendMailer отправляет письма через HTTP API Resend. Без API-ключа
// работает вхолостую и только логирует, что удобно для локальной
// разработки.
type ResendMailer struct {
	apiKey string
	from   string
	url    string
	client *http.Client
	logger logger.Logger
}

func NewResendMailer(apiKey, from string, log logger.Logger) *ResendMailer {
	if apiKey == "" {
		log.Warn("resend api key is empty, email delivery disabled")
	}

	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		url:    resendAPI,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: log,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, htmlBody string, pdfAttachment []byte) error {
	if m.apiKey == "" {
		m.logger.Debug("email skipped (mailer disabled)",
			logger.String("to", to),
			logger.String("subject", subject),
		)
		return nil
	}

	payload := resendEmail{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	}
	if len(pdfAttachment) > 0 {
		payload.Attachments = []attachment{{
			Filename: "ticket.pdf",
			Content:  base64.StdEncoding.EncodeToString(pdfAttachment),
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend api error: %s", resp.Status)
	}

	m.logger.Info("email sent",
		logger.String("to", to),
		logger.String("subject", subject),
	)

	return nil
}
