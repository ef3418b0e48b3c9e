package external

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const smtpDialTimeout = 10 * time.Second

// SMTPEmailProviderAdapter implements the EmailProvider port over SMTP
type SMTPEmailProviderAdapter struct {
	host     string
	port     int
	username string
	password string
	fromName string
	fromAddr string
	now      func() time.Time
}

// SMTPEmailParams holds the SMTP connection settings
type SMTPEmailParams struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
}

// NewSMTPEmailProviderAdapter creates a new SMTP email provider adapter
func NewSMTPEmailProviderAdapter(params SMTPEmailParams) *SMTPEmailProviderAdapter {
	return &SMTPEmailProviderAdapter{
		host:     params.Host,
		port:     params.Port,
		username: params.Username,
		password: params.Password,
		fromName: params.FromName,
		fromAddr: params.FromAddr,
		now:      time.Now,
	}
}

// SendEmail delivers one message. STARTTLS is used when offered and
// authentication only when credentials are configured.
func (p *SMTPEmailProviderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if params.To == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if params.Subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}
	if params.Body == "" {
		return errors.NewValidationError("email body cannot be empty")
	}

	addr := net.JoinHostPort(p.host, fmt.Sprint(p.port))
	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.NewNotificationError("failed to connect to SMTP server", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		_ = conn.Close()
		return errors.NewNotificationError("failed to start SMTP session", err)
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: p.host}); err != nil {
			return errors.NewNotificationError("failed to establish secure TLS connection", err)
		}
	}

	if p.username != "" && p.password != "" {
		if err := client.Auth(smtp.PlainAuth("", p.username, p.password, p.host)); err != nil {
			return errors.NewNotificationError("failed to authenticate", err)
		}
	}

	if err := client.Mail(p.fromAddr); err != nil {
		return errors.NewNotificationError("failed to set sender", err)
	}
	if err := client.Rcpt(params.To); err != nil {
		return errors.NewNotificationError("failed to set recipient", err)
	}

	writer, err := client.Data()
	if err != nil {
		return errors.NewNotificationError("failed to get data writer", err)
	}
	if _, err := writer.Write([]byte(p.buildMessage(params))); err != nil {
		_ = writer.Close()
		return errors.NewNotificationError("failed to write message", err)
	}
	if err := writer.Close(); err != nil {
		return errors.NewNotificationError("server rejected message", err)
	}

	return client.Quit()
}

// ValidateConfiguration validates the SMTP settings
func (p *SMTPEmailProviderAdapter) ValidateConfiguration() error {
	if p.host == "" {
		return errors.NewConfigurationError("SMTP host cannot be empty", nil)
	}
	if p.port < 1 || p.port > 65535 {
		return errors.NewConfigurationError("SMTP port must be between 1 and 65535", nil)
	}
	if p.fromAddr == "" {
		return errors.NewConfigurationError("from address cannot be empty", nil)
	}
	if p.fromName == "" {
		return errors.NewConfigurationError("from name cannot be empty", nil)
	}
	return nil
}

func (p *SMTPEmailProviderAdapter) buildMessage(params ports.EmailParams) string {
	contentType := "text/plain"
	if params.IsHTML {
		contentType = "text/html"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", p.fromName, p.fromAddr)
	fmt.Fprintf(&b, "To: %s\r\n", params.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", params.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", p.now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(params.Body)
	return b.String()
}
