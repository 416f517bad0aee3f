// Package config locates the sf config directory and loads config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/sf/internal/filelock"
	"github.com/harrison/sf/internal/logger"
	"github.com/harrison/sf/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents sf configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// MaxDepth is the deepest directory level that is still descended into
	MaxDepth int `yaml:"max_depth"`

	// ShowHidden includes hidden entries in the results
	ShowHidden bool `yaml:"show_hidden"`

	// PruneHiddenDirs skips the contents of hidden directories when hidden
	// entries are not shown
	PruneHiddenDirs bool `yaml:"prune_hidden_dirs"`

	// CaseSensitive disables ASCII case folding
	CaseSensitive bool `yaml:"case_sensitive"`

	// Performance disables the spinner and colors
	Performance bool `yaml:"performance"`

	// Color enables colored output on terminals
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		MaxDepth:        models.DefaultMaxDepth,
		ShowHidden:      false,
		PruneHiddenDirs: true,
		CaseSensitive:   false,
		Performance:     false,
		Color:           true,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers tell keys that are absent apart from explicit zero values.
	type yamlConfig struct {
		LogLevel        string `yaml:"log_level"`
		MaxDepth        *int   `yaml:"max_depth"`
		ShowHidden      *bool  `yaml:"show_hidden"`
		PruneHiddenDirs *bool  `yaml:"prune_hidden_dirs"`
		CaseSensitive   *bool  `yaml:"case_sensitive"`
		Performance     *bool  `yaml:"performance"`
		Color           *bool  `yaml:"color"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.MaxDepth != nil {
		cfg.MaxDepth = *yamlCfg.MaxDepth
	}
	if yamlCfg.ShowHidden != nil {
		cfg.ShowHidden = *yamlCfg.ShowHidden
	}
	if yamlCfg.PruneHiddenDirs != nil {
		cfg.PruneHiddenDirs = *yamlCfg.PruneHiddenDirs
	}
	if yamlCfg.CaseSensitive != nil {
		cfg.CaseSensitive = *yamlCfg.CaseSensitive
	}
	if yamlCfg.Performance != nil {
		cfg.Performance = *yamlCfg.Performance
	}
	if yamlCfg.Color != nil {
		cfg.Color = *yamlCfg.Color
	}

	return cfg, nil
}

// FlagOverrides holds the CLI flags that can override config values.
// A nil field means the flag was not given.
type FlagOverrides struct {
	LogLevel        *string
	MaxDepth        *int
	ShowHidden      *bool
	PruneHiddenDirs *bool
	CaseSensitive   *bool
	Performance     *bool
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(flags FlagOverrides) {
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
	if flags.MaxDepth != nil {
		c.MaxDepth = *flags.MaxDepth
	}
	if flags.ShowHidden != nil {
		c.ShowHidden = *flags.ShowHidden
	}
	if flags.PruneHiddenDirs != nil {
		c.PruneHiddenDirs = *flags.PruneHiddenDirs
	}
	if flags.CaseSensitive != nil {
		c.CaseSensitive = *flags.CaseSensitive
	}
	if flags.Performance != nil {
		c.Performance = *flags.Performance
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: log_level %q, must be one of: trace, debug, info, warn, error", ErrInvalidConfig, c.LogLevel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path atomically, under the file's lock.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
