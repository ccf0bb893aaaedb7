// Package config loads the application configuration from the user's
// config directory.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPollInterval matches the reminder check cadence of the
	// desktop app this tool grew out of.
	DefaultPollInterval = "10s"

	// DefaultDateFormat is the input layout for reminder flags.
	DefaultDateFormat = "2006-01-02 15:04"
)

// Config represents the application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// DatabaseConfig controls where the task database lives.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RemindersConfig controls the reminder watcher and date input parsing.
type RemindersConfig struct {
	PollInterval string `yaml:"poll_interval"`
	DateFormat   string `yaml:"date_format"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	config := defaults()

	configPath, err := getConfigPath()
	if err != nil {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// DatabasePath resolves the database location. The DELO_DB_PATH environment
// variable wins over the config file; both fall back to ~/.delo/tasks.db.
func (c *Config) DatabasePath() (string, error) {
	if envPath := os.Getenv("DELO_DB_PATH"); envPath != "" {
		return envPath, nil
	}
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".delo", "tasks.db"), nil
}

// PollInterval parses the configured reminder cadence, falling back to the
// default when the value is missing or malformed.
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Reminders.PollInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultPollInterval)
	}
	return d
}

// DateFormat returns the reminder input layout.
func (c *Config) DateFormat() string {
	if c.Reminders.DateFormat == "" {
		return DefaultDateFormat
	}
	return c.Reminders.DateFormat
}

// Default returns a config with every field at its default value, without
// touching the filesystem.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Reminders: RemindersConfig{
			PollInterval: DefaultPollInterval,
			DateFormat:   DefaultDateFormat,
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Reminders.PollInterval == "" {
		c.Reminders.PollInterval = DefaultPollInterval
	}
	if c.Reminders.DateFormat == "" {
		c.Reminders.DateFormat = DefaultDateFormat
	}
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "delo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "delo", "config.yaml"), nil
}
