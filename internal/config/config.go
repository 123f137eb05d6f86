// Package config manages the persisted eternal-green configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds the tunable parameters for activity simulation. It is
// persisted as a flat JSON object with exactly these seven keys.
type Config struct {
	IntervalSeconds  int    `json:"interval_seconds"`
	MovementPixels   int    `json:"movement_pixels"`
	SilentMode       bool   `json:"silent_mode"`
	LogFilePath      string `json:"log_file_path"`
	RandomInterval   bool   `json:"random_interval"`
	IntervalRangeMin int    `json:"interval_range_min"`
	IntervalRangeMax int    `json:"interval_range_max"`
}

// Default returns a configuration with the documented defaults.
func Default() Config {
	return Config{
		IntervalSeconds:  60,
		MovementPixels:   10,
		SilentMode:       false,
		LogFilePath:      "~/.eternal_green/activity.log",
		RandomInterval:   false,
		IntervalRangeMin: 10,
		IntervalRangeMax: 60,
	}
}

// DefaultPath returns the default location of the configuration file.
func DefaultPath() string {
	return filepath.Join("~", ".eternal_green", "config.json")
}

// ExpandPath expands a leading "~" to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
