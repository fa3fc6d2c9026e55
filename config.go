package g4fclient

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML representation of a client configuration. Library
// users who keep backend settings in a file can load one with
// LoadConfigFromFile; everything in it is optional.
type FileConfig struct {
	// BaseURL overrides the default local backend address
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds overrides the default 30-second header timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Model is a default model identifier for prompts
	Model string `yaml:"model"`

	// Provider is a default upstream provider name
	Provider string `yaml:"provider"`

	// APIKey is forwarded to the backend with each request
	APIKey string `yaml:"api_key"`

	// WebSearch enables web-augmented answers by default
	WebSearch bool `yaml:"web_search"`

	// AutoContinue enables backend continuation of truncated answers
	AutoContinue bool `yaml:"auto_continue"`
}

// LoadConfigFromFile reads a YAML client configuration from disk.
func LoadConfigFromFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ClientConfig converts the file settings into a ClientConfig, leaving
// unset fields at their zero values so NewClient applies the defaults.
func (c *FileConfig) ClientConfig() ClientConfig {
	cfg := ClientConfig{BaseURL: c.BaseURL}
	if c.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	return cfg
}

// PromptParams converts the file defaults into per-call parameters.
func (c *FileConfig) PromptParams() PromptParams {
	params := PromptParams{
		Model:        c.Model,
		WebSearch:    c.WebSearch,
		Provider:     c.Provider,
		AutoContinue: c.AutoContinue,
	}
	if c.APIKey != "" {
		key := c.APIKey
		params.APIKey = &key
	}
	return params
}
