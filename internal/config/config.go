package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type RecoveryConfig struct {
	// DerivationSecret is folded into phrase derivation. Changing it after
	// phrases were handed out breaks the derived fallback for all wallets
	// without stored rows.
	DerivationSecret string `yaml:"derivation_secret"`
	// LegacyPhrase is the pre-migration shared phrase. Empty disables the
	// legacy verification path once migration is complete.
	LegacyPhrase string `yaml:"legacy_phrase"`
	BcryptCost   int    `yaml:"bcrypt_cost"`
}

type SessionConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type AlertsConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	ToEmail      string `yaml:"to_email"`

	TelegramBotToken string `yaml:"telegram_bot_token"`
	TelegramChatID   int64  `yaml:"telegram_chat_id"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Recovery RecoveryConfig `yaml:"recovery"`
	Alerts   AlertsConfig   `yaml:"alerts"`
}

func LoadConfig() *Config {
	path := os.Getenv("WALLETVAULT_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		panic("Failed to open config: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 24 * 60
	}
	if cfg.Recovery.DerivationSecret == "" {
		panic("recovery.derivation_secret must be set")
	}
	if cfg.Session.Secret == "" {
		panic("session.secret must be set")
	}
	return &cfg
}
