package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// MailerClient posts emails to the external mailer service. Delivery is
// fire-and-forget: failures are logged and never reach the caller.
type MailerClient struct {
	baseURL    string
	senderName string
	httpClient *http.Client
}

func NewMailerClient(baseURL, senderName string) *MailerClient {
	return &MailerClient{
		baseURL:    baseURL,
		senderName: senderName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type mailPayload struct {
	EmailSendTo string `json:"EmailSendTo"`
	EmailTitle  string `json:"EmailTitle"`
	Body        string `json:"Body"`
	SenderName  string `json:"SenderName"`
}

func (m *MailerClient) SendAsync(to, subject, body string) {
	if m.baseURL == "" || to == "" {
		return
	}
	go func() {
		payload, err := json.Marshal(mailPayload{
			EmailSendTo: to,
			EmailTitle:  subject,
			Body:        body,
			SenderName:  m.senderName,
		})
		if err != nil {
			log.Printf("Failed to encode mail payload: %v", err)
			return
		}
		resp, err := m.httpClient.Post(m.baseURL+"/mail", "application/json", bytes.NewReader(payload))
		if err != nil {
			log.Printf("Failed to send email to %s: %v", to, err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			log.Printf("Mailer service returned %d for email to %s", resp.StatusCode, to)
			return
		}
		log.Printf("Email sent to %s: %s", to, subject)
	}()
}
