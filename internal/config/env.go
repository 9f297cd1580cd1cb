package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidWindow is returned when the configured window has no area.
var ErrInvalidWindow = errors.New("window size must be positive")

// Config is the runtime configuration of the card application.
type Config struct {
	WindowWidth  int    `env:"CARD_WINDOW_WIDTH" envDefault:"800"`
	WindowHeight int    `env:"CARD_WINDOW_HEIGHT" envDefault:"600"`
	Muted        bool   `env:"CARD_MUTED" envDefault:"false"`
	Notify       bool   `env:"CARD_NOTIFY" envDefault:"false"`
	Seed         uint64 `env:"CARD_SEED" envDefault:"0"`
	LogLevel     string `env:"CARD_LOG_LEVEL" envDefault:"info"`

	Recipient    string `env:"CARD_RECIPIENT" envDefault:"Nishtha"`
	Prompt       string `env:"CARD_PROMPT" envDefault:"I am really sorry. Will you forgive me?"`
	PartyTitle   string `env:"CARD_PARTY_TITLE" envDefault:"Party Time"`
	PartyMessage string `env:"CARD_PARTY_MESSAGE" envDefault:"Thanks for forgiving me! Last time, promise."`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports whether the configuration can open a window.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Title returns the prompt heading addressed to the recipient.
func (c Config) Title() string {
	if c.Recipient == "" {
		return "Hey"
	}
	return "Hey " + c.Recipient
}
