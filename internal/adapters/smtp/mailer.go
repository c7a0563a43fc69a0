// Package smtp delivers support tickets to the support inbox over SMTP.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// Mailer sends support tickets through an SMTP relay using STARTTLS and
// AUTH LOGIN (Office365 compatible).
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	inbox    string
	log      *slog.Logger
}

// Options configures a Mailer.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the sender address on outgoing tickets.
	From string

	// Inbox is the destination support mailbox.
	Inbox string

	Logger *slog.Logger
}

// NewMailer creates an SMTP-backed ticket sender.
func NewMailer(opts Options) *Mailer {
	return &Mailer{
		host:     opts.Host,
		port:     opts.Port,
		username: opts.Username,
		password: opts.Password,
		from:     opts.From,
		inbox:    opts.Inbox,
		log:      opts.Logger,
	}
}

func (m *Mailer) logger() *slog.Logger {
	if m.log != nil {
		return m.log
	}
	return slog.Default()
}

// Send delivers a support ticket. The ticket submitter's address goes in
// Reply-To so support staff can answer directly.
func (m *Mailer) Send(ctx context.Context, ticket ports.SupportTicket) error {
	subject := ticket.Subject
	if subject == "" {
		subject = "Support request"
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + m.inbox + "\r\n")
	msg.WriteString("Reply-To: " + ticket.Email + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Name: %s\nEmail: %s\nCategory: %s\n\n%s\n", ticket.Name, ticket.Email, ticket.Category, ticket.Message)

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("create smtp client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if tlsErr := client.StartTLS(&tls.Config{ServerName: m.host}); tlsErr != nil {
			return fmt.Errorf("starttls: %w", tlsErr)
		}
	}

	if m.username != "" {
		if authErr := client.Auth(loginAuth(m.username, m.password, m.host)); authErr != nil {
			return fmt.Errorf("smtp auth: %w", authErr)
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := client.Rcpt(m.inbox); err != nil {
		return fmt.Errorf("RCPT TO %s: %w", m.inbox, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write([]byte(msg.String())); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	if err := client.Quit(); err != nil {
		m.logger().Warn("smtp quit returned error", "error", err)
	}
	return nil
}

// LogMailer is the development fallback used when no SMTP relay is
// configured. Tickets are logged instead of delivered.
type LogMailer struct {
	Logger *slog.Logger
}

func (l *LogMailer) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Send logs the ticket and reports success.
func (l *LogMailer) Send(_ context.Context, ticket ports.SupportTicket) error {
	l.logger().Info("support ticket received (smtp disabled)",
		"name", ticket.Name,
		"email", ticket.Email,
		"category", ticket.Category,
		"subject", ticket.Subject,
	)
	return nil
}
