package smtp

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

// Mailer sends report emails over SMTP with STARTTLS. Connection, TLS and
// auth failures are translated into domain errors so the HTTP layer can
// classify them.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

func NewMailer(host string, port int, username, password string) ports.Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		timeout:  30 * time.Second,
	}
}

func (m *Mailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: connect %s: %v", domain.ErrSMTPFailure, addr, err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", domain.ErrSMTPFailure, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("%w: starttls: %v", domain.ErrSMTPFailure, err)
		}
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return classifySMTPError(err)
	}

	if err := client.Mail(m.username); err != nil {
		return classifySMTPError(err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return classifySMTPError(err)
	}

	w, err := client.Data()
	if err != nil {
		return classifySMTPError(err)
	}
	if _, err := w.Write([]byte(BuildMessage(m.username, msg))); err != nil {
		return fmt.Errorf("%w: write body: %v", domain.ErrSMTPFailure, err)
	}
	if err := w.Close(); err != nil {
		return classifySMTPError(err)
	}

	return client.Quit()
}

// BuildMessage assembles the raw RFC 2822 message: HTML body plus optional
// base64 attachments in a multipart/mixed envelope.
func BuildMessage(from string, msg *domain.EmailMessage) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(msg.HTMLBody)
		b.WriteString("\r\n")
		return b.String()
	}

	boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())
	b.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	b.WriteString("\r\n")

	for _, att := range msg.Attachments {
		b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		b.WriteString("Content-Type: application/octet-stream\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", att.Filename))
		b.WriteString("\r\n")
		b.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(att.Content)))
		b.WriteString("\r\n")
	}

	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return b.String()
}

// wrapBase64 folds encoded content at the 76-character MIME line limit.
func wrapBase64(s string) string {
	const lineLen = 76
	var b strings.Builder
	for len(s) > lineLen {
		b.WriteString(s[:lineLen])
		b.WriteString("\r\n")
		s = s[lineLen:]
	}
	b.WriteString(s)
	return b.String()
}

func classifySMTPError(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch {
		case protoErr.Code == 535 || protoErr.Code == 534 || protoErr.Code == 530:
			return fmt.Errorf("%w: %v", domain.ErrSMTPAuthFailed, err)
		case protoErr.Code == 550 || protoErr.Code == 551 || protoErr.Code == 553:
			return fmt.Errorf("%w: %v", domain.ErrRecipientRefused, err)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrSMTPFailure, err)
}
