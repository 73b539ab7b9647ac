package config

import (
	"os"
	"path/filepath"
)

// Default configuration values
const (
	// DefaultFormat is the output document format.
	DefaultFormat = "markdown"

	// DefaultMaxFileSize is the per-file content read limit in bytes.
	DefaultMaxFileSize int64 = 16 * 1024

	// DefaultUseGitignore honors ignore files unless explicitly disabled.
	DefaultUseGitignore = true

	// DefaultRecencyDays is the trailing modification window for --recent.
	DefaultRecencyDays = 7

	// ConfigFileName is the dotfile searched for in the working directory
	// and the user config directory.
	ConfigFileName = ".repopack"
)

// DefaultConfigDir returns the user-level configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "repopack")
	}
	return filepath.Join(home, ".config", "repopack")
}
