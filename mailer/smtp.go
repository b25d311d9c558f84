package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"weather-notifier/logger"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages over an implicit-TLS SMTP session with PLAIN auth
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	timeout   time.Duration
	tlsConfig *tls.Config
}

// NewSMTPSender creates a sender for host:port logging in as username
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		timeout:  15 * time.Second,
	}
}

// WithTLSConfig replaces the default TLS settings, e.g. to trust a private CA
func (s *SMTPSender) WithTLSConfig(cfg *tls.Config) *SMTPSender {
	s.tlsConfig = cfg
	return s
}

// Send opens a session, logs in, sends msg and closes the session.
// The session is closed on every path once the dial succeeded.
func (s *SMTPSender) Send(ctx context.Context, msg *mail.Msg) (err error) {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSSL(),
		mail.WithTimeout(s.timeout),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	}
	if s.tlsConfig != nil {
		opts = append(opts, mail.WithTLSConfig(s.tlsConfig))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	logger.Debugf("Connecting to %s:%d as %s", s.host, s.port, s.username)
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", s.host, s.port, err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close SMTP session: %w", cerr)
		}
	}()

	if err := client.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Infof("Sent email via %s", s.host)
	return nil
}
