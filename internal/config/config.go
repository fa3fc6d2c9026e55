package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Chat    ChatConfig    `mapstructure:"chat"`
}

type BackendConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type ChatConfig struct {
	Model        string `mapstructure:"model"`
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	WebSearch    bool   `mapstructure:"web_search"`
	AutoContinue bool   `mapstructure:"auto_continue"`
}

func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Backend.URL != "" {
		if _, err := url.Parse(c.Backend.URL); err != nil {
			return fmt.Errorf("invalid backend.url: %w", err)
		}
	}
	if c.Backend.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid backend.timeout_seconds: %d", c.Backend.TimeoutSeconds)
	}
	return nil
}
