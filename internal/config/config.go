// Package config persists CLI preferences: per-kind validator address
// overrides and the default output mode. The encoding packages never
// touch it; config is injected at the command layer only.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFile = "config.json"

// Config is the persisted CLI configuration.
type Config struct {
	// OutputJSON makes every command emit machine JSON by default.
	OutputJSON bool `json:"outputJson"`
	// ValidatorAddresses maps a validator kind (ownable, ens, webauthn)
	// to a contract address used when the input supplies none.
	ValidatorAddresses map[string]string `json:"validatorAddresses"`

	configDir string
}

// Load reads config from dir (or returns defaults). dir defaults to
// ~/.modenc.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".modenc")
	}

	cfg := &Config{
		ValidatorAddresses: make(map[string]string),
		configDir:          dir,
	}

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir
	if cfg.ValidatorAddresses == nil {
		cfg.ValidatorAddresses = make(map[string]string)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// SetValidatorAddress records an address override for a validator kind.
func (c *Config) SetValidatorAddress(kind, address string) {
	if c.ValidatorAddresses == nil {
		c.ValidatorAddresses = make(map[string]string)
	}
	c.ValidatorAddresses[kind] = address
}

// ValidatorAddress returns the override for a kind, or "" if none.
func (c *Config) ValidatorAddress(kind string) string {
	return c.ValidatorAddresses[kind]
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}
