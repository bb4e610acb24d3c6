package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"3000"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	// Mail account used as the sending identity (Gmail by default)
	EmailUser  string `env:"EMAIL_USER"`
	EmailPass  string `env:"EMAIL_PASS"`
	AdminEmail string `env:"ADMIN_EMAIL"`
	SMTPHost   string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort   string `env:"SMTP_PORT" envDefault:"587"`
	// Wraps the SMTP sender in a circuit breaker
	MailBreakerEnabled bool `env:"MAIL_BREAKER_ENABLED" envDefault:"true"`
	// "*" allows any origin
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine, production injects the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.EmailUser = strings.TrimSpace(cfg.EmailUser)
	cfg.AdminEmail = strings.TrimSpace(cfg.AdminEmail)
	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	return cfg, nil
}

// AdminRecipient is the address that receives new-contact notifications.
func (c *Config) AdminRecipient() string {
	if c.AdminEmail != "" {
		return c.AdminEmail
	}
	return c.EmailUser
}

// MailConfigured reports whether sending credentials are present.
func (c *Config) MailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
