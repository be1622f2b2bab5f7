// Package nodecfg loads this node's TOML configuration: a single [general]
// table naming the block-production cadence and the keystore directory.
package nodecfg

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// General mirrors the [general] table.
type General struct {
	BlockTimeSecs uint64 `toml:"block_time_secs"`
	KeysPath      string `toml:"keys_path"`
}

// Config is the root of the configuration file.
type Config struct {
	General General `toml:"general"`
}

// defaults applied before the file is overlaid on top.
func defaults() *Config {
	return &Config{General: General{
		BlockTimeSecs: 12,
		KeysPath:      "./keys",
	}}
}

// Load reads and parses a TOML config file at path, applying defaults for
// any field the file leaves unset and validating the result.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("nodecfg: load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.General.BlockTimeSecs == 0 {
		return fmt.Errorf("nodecfg: block_time_secs must be greater than 0")
	}
	return nil
}
