package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manager loads, saves, and updates the configuration file at a fixed path.
type Manager struct {
	path string
}

// NewManager returns a manager for the given config file path. An empty
// path selects DefaultPath.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	return &Manager{path: ExpandPath(path)}
}

// Path returns the resolved config file path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the configuration from disk. A missing file yields the
// defaults without creating anything on disk. Malformed JSON or
// out-of-bound values fail; the broken file is left in place.
func (m *Manager) Load() (Config, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", m.path, err)
	}

	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", m.path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save validates the configuration and writes it atomically: the JSON is
// written to a temp file in the target directory and renamed over the
// destination, so a failed write never leaves a partial file behind.
// The parent directory is created if absent.
func (m *Manager) Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace config %s: %w", m.path, err)
	}
	return nil
}

// Changes carries partial configuration updates. Nil fields keep the
// current value.
type Changes struct {
	IntervalSeconds  *int
	MovementPixels   *int
	SilentMode       *bool
	LogFilePath      *string
	RandomInterval   *bool
	IntervalRangeMin *int
	IntervalRangeMax *int
}

// Update merges changes into cur, re-validates the merged result as a
// unit so cross-field invariants hold after the merge, and persists it
// atomically. On any failure the on-disk file is untouched and the
// current configuration remains in effect.
func (m *Manager) Update(cur Config, ch Changes) (Config, error) {
	next := cur
	if ch.IntervalSeconds != nil {
		next.IntervalSeconds = *ch.IntervalSeconds
	}
	if ch.MovementPixels != nil {
		next.MovementPixels = *ch.MovementPixels
	}
	if ch.SilentMode != nil {
		next.SilentMode = *ch.SilentMode
	}
	if ch.LogFilePath != nil {
		next.LogFilePath = *ch.LogFilePath
	}
	if ch.RandomInterval != nil {
		next.RandomInterval = *ch.RandomInterval
	}
	if ch.IntervalRangeMin != nil {
		next.IntervalRangeMin = *ch.IntervalRangeMin
	}
	if ch.IntervalRangeMax != nil {
		next.IntervalRangeMax = *ch.IntervalRangeMax
	}

	if err := m.Save(next); err != nil {
		return cur, err
	}
	return next, nil
}
