package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/sf/internal/logger"
)

// HomeEnv overrides the sf config directory.
const HomeEnv = "SF_HOME"

// ConfigFileName is the name of the config file inside the sf home.
const ConfigFileName = "config.yaml"

// Home returns the sf config directory
// Priority order:
//  1. SF_HOME environment variable (if set)
//  2. <user config dir>/sf, e.g. ~/.config/sf on Linux
//
// The directory is created if it doesn't exist
func Home() (string, error) {
	home := os.Getenv(HomeEnv)
	if home == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("find user config directory: %w", err)
		}
		home = filepath.Join(base, "sf")
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create sf config directory: %w", err)
	}
	return home, nil
}

// LogPath returns the path of the shared log file: <home>/sf.log
func LogPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, logger.LogFileName), nil
}

// DefaultConfigPath returns <home>/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}
