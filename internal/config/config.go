// Package config loads game configuration from an optional HCL file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variable overrides, applied after the config file
const (
	// EnvSaveFile overrides the save file path
	EnvSaveFile = "BLACKJACK_SAVE_FILE"

	// EnvLogFile overrides the debug log path
	EnvLogFile = "BLACKJACK_LOG_FILE"

	// EnvSeed provides a shuffle seed for deterministic play
	EnvSeed = "BLACKJACK_SEED"

	// EnvBankroll overrides the starting bankroll for fresh saves
	EnvBankroll = "BLACKJACK_BANKROLL"
)

// Config represents the complete game configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
}

// GameSettings contains the game block of the config file
type GameSettings struct {
	StartingBankroll int    `hcl:"starting_bankroll,optional"`
	SaveFile         string `hcl:"save_file,optional"`
	LogFile          string `hcl:"log_file,optional"`
	Seed             int64  `hcl:"seed,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingBankroll: 5000,
			SaveFile:         "blackjack_save.json",
		},
	}
}

// Load reads configuration from an HCL file, starting from defaults. A
// missing file is not an error; a file that exists but fails to parse is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file: %s", diags.Error())
	}

	// The game block is optional; a file without one keeps every default
	var raw struct {
		Game *GameSettings `hcl:"game,block"`
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file: %s", diags.Error())
	}

	if raw.Game != nil {
		if raw.Game.StartingBankroll > 0 {
			cfg.Game.StartingBankroll = raw.Game.StartingBankroll
		}
		if raw.Game.SaveFile != "" {
			cfg.Game.SaveFile = raw.Game.SaveFile
		}
		if raw.Game.LogFile != "" {
			cfg.Game.LogFile = raw.Game.LogFile
		}
		if raw.Game.Seed != 0 {
			cfg.Game.Seed = raw.Game.Seed
		}
	}

	return cfg, nil
}

// ApplyEnv overlays environment variable overrides onto the config
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSaveFile); v != "" {
		c.Game.SaveFile = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Game.LogFile = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv(EnvBankroll); v != "" {
		bankroll, err := strconv.Atoi(v)
		if err != nil || bankroll <= 0 {
			return fmt.Errorf("invalid %s value %q", EnvBankroll, v)
		}
		c.Game.StartingBankroll = bankroll
	}
	return nil
}
