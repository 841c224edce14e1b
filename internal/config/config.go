package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultCoinBonus is the wallet balance granted on first open.
const DefaultCoinBonus = 100

// Config represents the global ~/.basking/config.toml.
type Config struct {
	DataDir      string `toml:"data_dir"`
	SeedDemoData bool   `toml:"seed_demo_data"`
	InitialCoins int    `toml:"initial_coins"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		SeedDemoData: true,
		InitialCoins: DefaultCoinBonus,
	}
}

// Load reads config from the given path. Returns nil and an error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads config from path, falling back to Default on any error.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
