// Package mail sends the portal's candidate- and reviewer-facing
// notifications over SMTP.
package mail

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"talent-bridge/internal/config"
)

// Message is one outbound email. HTMLBody is optional; when present the
// message goes out as multipart/alternative with Body as the fallback.
type Message struct {
	To       []string
	CC       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender abstracts delivery so usecases and tests can substitute fakes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}
}

func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}
	recipients := append(append([]string{}, msg.To...), msg.CC...)
	return smtp.SendMail(s.addr, s.auth, s.from, recipients, buildMessage(s.from, msg))
}

const boundary = "=_talent-bridge-alt"

func buildMessage(from string, msg Message) []byte {
	var b strings.Builder

	writeHeader := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}

	writeHeader("From", from)
	writeHeader("To", strings.Join(msg.To, ", "))
	if len(msg.CC) > 0 {
		writeHeader("Cc", strings.Join(msg.CC, ", "))
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader("MIME-Version", "1.0")

	if msg.HTMLBody == "" {
		writeHeader("Content-Type", `text/plain; charset="utf-8"`)
		b.WriteString("\r\n")
		b.WriteString(msg.Body)
		return []byte(b.String())
	}

	writeHeader("Content-Type", fmt.Sprintf(`multipart/alternative; boundary="%s"`, boundary))
	b.WriteString("\r\n")

	writePart := func(contentType, body string) {
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: " + contentType + "\r\n\r\n")
		b.WriteString(body)
		b.WriteString("\r\n")
	}
	writePart(`text/plain; charset="utf-8"`, msg.Body)
	writePart(`text/html; charset="utf-8"`, msg.HTMLBody)
	b.WriteString("--" + boundary + "--\r\n")

	return []byte(b.String())
}
