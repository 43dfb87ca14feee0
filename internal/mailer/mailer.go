// Package mailer sends notification emails over SMTP. The library's pack of
// messages (verification, password reset, overdue alerts, admin reports) is
// composed by the services; this package only formats the envelope and talks
// to the transport.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"biblioteca-api/internal/logger"
)

const fromDisplayName = "Administracion Biblioteca"

// SMTPMailer sends mail through a single SMTP relay with PLAIN auth.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates an SMTPMailer.
func New(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		send:     smtp.SendMail,
	}
}

// Send delivers one HTML message to a single recipient. The caller decides
// whether a delivery failure is fatal; this method only reports it.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	err := m.send(m.host+":"+m.port, auth, m.from, []string{to}, msg)
	if err != nil {
		logger.Log.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return err
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %q <%s>\r\n", fromDisplayName, from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
