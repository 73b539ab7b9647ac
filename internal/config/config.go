// Package config handles configuration loading and validation for
// repopack. Values resolve in order: explicit flags, then the TOML
// dotfile, then environment variables, then defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config represents the complete repopack configuration.
type Config struct {
	Output       string   `mapstructure:"output"`
	Format       string   `mapstructure:"format"`
	Include      []string `mapstructure:"include"`
	Exclude      []string `mapstructure:"exclude"`
	MaxFileSize  int64    `mapstructure:"max_file_size"`
	UseGitignore bool     `mapstructure:"use_gitignore"`
	Tokens       bool     `mapstructure:"tokens"`
	Recent       bool     `mapstructure:"recent"`
	LineNumbers  bool     `mapstructure:"line_numbers"`
	Preview      int      `mapstructure:"preview"`
}

// Global configuration instance
var cfg *Config

// Get returns the current configuration.
func Get() *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Format:       DefaultFormat,
		MaxFileSize:  DefaultMaxFileSize,
		UseGitignore: DefaultUseGitignore,
	}
}

// Load reads configuration from file and environment variables.
func Load(configFile string) error {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(ConfigFileName)
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(DefaultConfigDir())
	}

	viper.SetEnvPrefix("REPOPACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("No config file found, using defaults")
	} else {
		log.Debug("Loaded config", "file", viper.ConfigFileUsed())
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	return nil
}

// setDefaults registers every key in viper so config-file and environment
// values resolve uniformly.
func setDefaults() {
	viper.SetDefault("output", "")
	viper.SetDefault("format", DefaultFormat)
	viper.SetDefault("include", []string{})
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("max_file_size", DefaultMaxFileSize)
	viper.SetDefault("use_gitignore", DefaultUseGitignore)
	viper.SetDefault("tokens", false)
	viper.SetDefault("recent", false)
	viper.SetDefault("line_numbers", false)
	viper.SetDefault("preview", 0)
}

// ConfigFilePath returns the path of the loaded config file, or empty
// string if none.
func ConfigFilePath() string {
	return viper.ConfigFileUsed()
}
