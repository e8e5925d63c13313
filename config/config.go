package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FarmConfig defines the virtual port farm
type FarmConfig struct {
	Ports       int    `json:"ports"`                 // number of pass-through ports to spawn
	SpawnerPath string `json:"spawnerPath,omitempty"` // explicit spawner binary (default: next to launcher)
	Monitor     bool   `json:"monitor"`               // run the TUI monitor
}

// PlayerConfig stores playback preferences for the score senders
type PlayerConfig struct {
	Tempo   int    `json:"tempo,omitempty"`   // BPM
	Palette string `json:"palette,omitempty"` // GPL palette for the monitor
}

// Config is the main configuration structure
type Config struct {
	Farm   FarmConfig   `json:"farm,omitempty"`
	Player PlayerConfig `json:"player,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Farm: FarmConfig{
			Ports:   8,
			Monitor: true,
		},
		Player: PlayerConfig{
			Tempo: 130,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midifarm"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path, defaulting when absent
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// fillDefaults patches zero values so a sparse config file still works
func (c *Config) fillDefaults() {
	if c.Farm.Ports < 1 {
		c.Farm.Ports = 8
	}
	if c.Player.Tempo < 1 {
		c.Player.Tempo = 130
	}
}
