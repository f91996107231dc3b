package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultPollInterval is used when the config does not set one.
const defaultPollInterval = 5 * time.Second

// Config is the root configuration structure for the modelcopy CLI.
type Config struct {
	// Source is the resource the model is copied from.
	Source ResourceConfig `yaml:"source"`

	// Target is the resource the model is copied into.
	Target TargetConfig `yaml:"target"`

	// PollInterval is the delay between poll steps.
	// Accepts duration strings like "5s", "500ms". Defaults to 5s.
	PollInterval Duration `yaml:"poll_interval"`
}

// ResourceConfig identifies a service resource and its credentials.
type ResourceConfig struct {
	// Endpoint is the resource's base URL.
	Endpoint string `yaml:"endpoint"`

	// APIKey authenticates requests to the resource.
	APIKey string `yaml:"api_key"`
}

// TargetConfig extends ResourceConfig with the identifiers the copy
// authorization is minted for.
type TargetConfig struct {
	ResourceConfig `yaml:",inline"`

	// ResourceID is the full resource identifier of the target.
	ResourceID string `yaml:"resource_id"`

	// ResourceRegion is the region hosting the target resource.
	ResourceRegion string `yaml:"resource_region"`
}

// Duration wraps time.Duration for YAML duration-string parsing.
type Duration time.Duration

// UnmarshalYAML parses duration strings like "5s" or "500ms".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates config YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = Duration(defaultPollInterval)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Source.Endpoint == "" {
		return errors.New("config: source.endpoint is required")
	}
	if c.Target.Endpoint == "" {
		return errors.New("config: target.endpoint is required")
	}
	if c.Target.ResourceID == "" {
		return errors.New("config: target.resource_id is required")
	}
	if c.Target.ResourceRegion == "" {
		return errors.New("config: target.resource_region is required")
	}
	if c.PollInterval < 0 {
		return errors.New("config: poll_interval must be positive")
	}
	return nil
}
