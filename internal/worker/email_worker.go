package worker

// email_worker.go
// Sends account statements (PDF attached) through SMTP. Every send goes
// through the circuit breaker so a dead mail server fails jobs fast.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// Sender is satisfied by *infra.Mailer.
type Sender interface {
	Send(to, subject, body, pdfPath string) error
}

// Breaker is satisfied by *infra.CircuitBreaker.
type Breaker interface {
	Execute(fn func() error) error
}

type EmailWorker struct {
	sender  Sender
	breaker Breaker
}

func NewEmailWorker(sender Sender, breaker Breaker) *EmailWorker {
	return &EmailWorker{sender: sender, breaker: breaker}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &PermanentError{Err: err}
	}
	if payload.ToEmail == "" {
		return &PermanentError{Err: errors.New("email_worker: empty to_email")}
	}

	err := w.breaker.Execute(func() error {
		return w.sender.Send(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath)
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: estado de cuenta enviado")
	return nil
}
