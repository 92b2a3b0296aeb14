// Package config holds the configuration of the wordgraph command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DictEnv lists word list files, separated by the OS path list
// separator. When set it replaces Dictionaries.
const DictEnv = "WORDGRAPH_DICT"

// Config holds all wordgraph configuration.
type Config struct {
	// Word list files, merged in order
	Dictionaries []string `yaml:"dictionaries"`

	// Store the empty word; blank lines in word lists insert it
	EmptyWord bool `yaml:"empty_word"`

	// Skip word list lines with characters outside a-z instead of failing
	SkipInvalid bool `yaml:"skip_invalid"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the command's logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. An empty path yields the
// defaults; a named file must exist. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if list := os.Getenv(DictEnv); list != "" {
		c.Dictionaries = filepath.SplitList(list)
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	for _, path := range c.Dictionaries {
		if path == "" {
			return fmt.Errorf("dictionaries: empty path")
		}
	}
	return nil
}

// ZapLevel parses Level. An empty level means info.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
