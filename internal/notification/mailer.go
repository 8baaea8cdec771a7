package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Mailer is fire-and-forget email dispatch. Callers must not treat a send
// failure as a request failure.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type noopMailer struct {
	logger *zap.Logger
}

func (m noopMailer) Send(ctx context.Context, from, to, subject, body string) error {
	m.logger.Debug("email disabled, dropping message",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

type smtpMailer struct {
	host     string
	port     int
	user     string
	password string
	useTLS   bool
}

// NewMailerFromEnv returns an SMTP mailer when EMAIL_ENABLED is set, and a
// no-op mailer otherwise.
func NewMailerFromEnv(logger ...*zap.Logger) Mailer {
	l := zap.L().Named("notification.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mailer")
	}

	host := os.Getenv("SMTP_HOST")
	if os.Getenv("EMAIL_ENABLED") == "" || host == "" {
		return noopMailer{logger: l}
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	return &smtpMailer{
		host:     host,
		port:     port,
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		useTLS:   os.Getenv("SMTP_USE_TLS") != "",
	}
}

func (m *smtpMailer) Send(ctx context.Context, from, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	msg := buildMessage(from, to, subject, body)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.useTLS {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}

	if m.user != "" {
		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildMessage(from, to, subject, body string) []byte {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n" + body)
}
