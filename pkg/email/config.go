package email

import (
	"time"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
)

// Config holds email service configuration.
type Config struct {
	Enabled bool
	From    string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int

	// Template settings
	AppName string
	BaseURL string
}

func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config.
func FromCentralConfig(c config.EmailConfig) Config {
	return Config{
		Enabled:            c.Enabled,
		From:               c.From,
		SMTPHost:           c.SMTPHost,
		SMTPPort:           c.SMTPPort,
		SMTPUsername:       c.SMTPUsername,
		SMTPPassword:       c.SMTPPassword,
		SMTPUseTLS:         c.SMTPUseTLS,
		SMTPTimeoutSeconds: c.TimeoutSeconds,
		AppName:            "Gerenciador de Projetos",
	}
}
