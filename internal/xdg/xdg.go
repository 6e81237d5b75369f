// Package xdg resolves XDG Base Directory paths for tables.
// Directories are created on demand with private permissions.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "tables"

// ConfigDir returns $XDG_CONFIG_HOME/tables, falling back to ~/.config/tables.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/tables, falling back to ~/.local/state/tables.
// Log files live here.
func StateDir() (string, error) {
	return resolve("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func resolve(env, homeRelative string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRelative)
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
