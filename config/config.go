package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Email    EmailConfig
	Roster   RosterConfig
	Cron     CronConfig
}

type ServerConfig struct {
	Port   string
	AppURL string // public base URL embedded in RSVP links
}

type DatabaseConfig struct {
	URL string
}

type EmailConfig struct {
	Enabled  bool
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	From     string
	FromName string
}

type RosterConfig struct {
	SheetCSVURL string // published CSV export of the roster spreadsheet
}

type CronConfig struct {
	Secret string // shared secret for the daily-reminders endpoint
	// InProcess enables the built-in gocron daily job in addition to the
	// secret-protected endpoint, for deployments without an external cron.
	InProcess bool
	Hour      int // local hour for the in-process job
}

// Load reads .env (if present) and the environment. Sensible defaults are
// set through viper; env always wins.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5300")
	v.SetDefault("EMAIL_ENABLED", true)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("EMAIL_FROM_NAME", "Paddle Scheduler")
	v.SetDefault("REMINDER_IN_PROCESS", false)
	v.SetDefault("REMINDER_HOUR", 9)

	cfg := &Config{
		Server: ServerConfig{
			Port:   v.GetString("PORT"),
			AppURL: v.GetString("APP_URL"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Email: EmailConfig{
			Enabled:  v.GetBool("EMAIL_ENABLED"),
			SMTPHost: v.GetString("SMTP_HOST"),
			SMTPPort: v.GetString("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("EMAIL_FROM"),
			FromName: v.GetString("EMAIL_FROM_NAME"),
		},
		Roster: RosterConfig{
			SheetCSVURL: v.GetString("SHEET_CSV_URL"),
		},
		Cron: CronConfig{
			Secret:    v.GetString("CRON_SECRET"),
			InProcess: v.GetBool("REMINDER_IN_PROCESS"),
			Hour:      v.GetInt("REMINDER_HOUR"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Server.AppURL == "" {
		return fmt.Errorf("APP_URL is required (used to build RSVP links)")
	}
	if c.Cron.Secret == "" {
		return fmt.Errorf("CRON_SECRET is required")
	}
	if c.Email.Enabled {
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when email is enabled")
		}
		if c.Email.From == "" {
			return fmt.Errorf("EMAIL_FROM is required when email is enabled")
		}
	}
	if c.Cron.Hour < 0 || c.Cron.Hour > 23 {
		return fmt.Errorf("REMINDER_HOUR must be between 0 and 23")
	}
	return nil
}
