// Package config loads the tourwatch configuration file.
//
// Configuration is a YAML file; every key is optional and falls back to a
// default that matches the live Alpenverein Heidelberg listing. A missing
// config file yields the defaults, so the tool runs without any setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HTTPConfig controls the listing fetch.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// TelegramConfig holds the Bot API target for the telegram notifier.
// The bot token is taken from TELEGRAM_BOT_TOKEN, never from the file.
type TelegramConfig struct {
	ChatID string `yaml:"chat_id"`
}

// Config is the full tourwatch configuration.
type Config struct {
	// URL is the tour listing page to scrape.
	URL string `yaml:"url"`
	// DataDir holds the snapshot and delta files.
	DataDir string `yaml:"data_dir"`
	// ChangelogDir holds the per-day markdown change logs.
	ChangelogDir string `yaml:"changelog_dir"`
	// Notifier selects the announcement channel: none, dryrun, twitter, telegram.
	Notifier string `yaml:"notifier"`

	HTTP     HTTPConfig     `yaml:"http"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		URL:          "https://www.alpenverein-heidelberg.de/index.php?inhalt=tourensucheergebnis",
		DataDir:      "~/.local/share/tourwatch",
		ChangelogDir: "changes",
		Notifier:     "none",
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "tourwatch/1.0 (github.com/mbruckner/tourwatch)",
		},
	}
}

// Load reads the config file at path and merges it over the defaults.
// A missing file returns the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.URL == "" {
		return errors.New("url must not be empty")
	}
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	switch c.Notifier {
	case "", "none", "dryrun", "twitter", "telegram":
	default:
		return fmt.Errorf("unknown notifier %q", c.Notifier)
	}
	return nil
}
