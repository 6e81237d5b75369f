// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"tables/cli/internal/bridge"
	"tables/cli/internal/xdg"
)

// FileName is the config file inside the XDG config directory.
const FileName = "config.json"

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string `json:"log_level"`
	// ChannelCapacity bounds both the request and the response channel.
	ChannelCapacity int      `json:"channel_capacity"`
	DB              DBConfig `json:"db"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	// DSN is used when neither --url nor an environment variable is set.
	// Prefer the keychain for connection strings that embed a password.
	DSN string `json:"dsn"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		LogLevel:        "info",
		ChannelCapacity: bridge.DefaultCapacity,
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads configuration from p. Fields absent from the file keep their
// default values.
func LoadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), err
	}
	if c.ChannelCapacity < 1 {
		c.ChannelCapacity = bridge.DefaultCapacity
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	return SaveFile(p, c)
}

// SaveFile writes c to p with 0600 permissions.
func SaveFile(p string, c Config) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
