package config

// SupportConfig contains configuration for delivering support tickets.
// When Host is empty, ticket delivery is disabled and submissions are
// logged instead (development behavior).
type SupportConfig struct {
	Host     string `env:"SMTP_HOST"     envDefault:""`
	Port     int    `env:"SMTP_PORT"     envDefault:"587"`
	Username string `env:"SMTP_USERNAME" envDefault:""`
	Password string `env:"SMTP_PASSWORD" envDefault:""`

	// From is the sender address on outgoing tickets.
	From string `env:"FROM" envDefault:"noreply@kylianerp.com"`

	// Inbox is the destination support mailbox.
	Inbox string `env:"INBOX" envDefault:"support@kylianerp.com"`
}

// Enabled reports whether SMTP delivery is configured.
func (s SupportConfig) Enabled() bool {
	return s.Host != ""
}
