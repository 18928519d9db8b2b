// Package notify delivers contact form notifications by email.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"folio/internal/config"
	"folio/internal/model"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("smtp is not configured")

// Notifier announces a new contact submission.
type Notifier interface {
	NotifyContact(ctx context.Context, s *model.ContactSubmission) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier sends plain text mail through an SMTP relay with PLAIN auth.
type SMTPNotifier struct {
	cfg  config.SMTPConfig
	send sendFunc
}

// NewSMTPNotifier creates a notifier. Missing From defaults to the SMTP user.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

// Configured reports whether the notifier has enough settings to send mail.
func (n *SMTPNotifier) Configured() bool {
	return n.cfg.Host != "" && n.cfg.User != "" && n.cfg.Password != "" && n.cfg.To != ""
}

// NotifyContact emails the submission to the configured recipient.
// The context bounds only the wait; net/smtp itself is not cancelable.
func (n *SMTPNotifier) NotifyContact(ctx context.Context, s *model.ContactSubmission) error {
	if !n.Configured() {
		return ErrNotConfigured
	}

	msg := buildMessage(n.cfg.From, n.cfg.To, s)
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	addr := n.cfg.Host + ":" + n.cfg.Port

	done := make(chan error, 1)
	go func() {
		done <- n.send(addr, auth, n.cfg.From, []string{n.cfg.To}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to string, s *model.ContactSubmission) []byte {
	var body strings.Builder
	fmt.Fprintf(&body, "New contact form submission\n\n")
	fmt.Fprintf(&body, "Name: %s\n", s.Name)
	fmt.Fprintf(&body, "Email: %s\n", s.Email)
	if s.Company != "" {
		fmt.Fprintf(&body, "Company: %s\n", s.Company)
	}
	fmt.Fprintf(&body, "Subject: %s\n", s.Subject)
	if !s.SubmittedAt.IsZero() {
		fmt.Fprintf(&body, "Submitted: %s\n", s.SubmittedAt.Format(time.RFC1123Z))
	}
	fmt.Fprintf(&body, "\nMessage:\n%s\n", s.Message)

	header := "To: " + to + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + sanitizeHeader(s.Email) + "\r\n" +
		"Subject: Portfolio Contact: " + sanitizeHeader(s.Subject) + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n"

	return []byte(header + body.String())
}

// sanitizeHeader strips line breaks so user input cannot inject headers.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
