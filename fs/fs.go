package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default config file location for butdiff.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/butdiff.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "butdiff", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "butdiff", "config.yaml")
}
