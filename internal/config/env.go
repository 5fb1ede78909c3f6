// Package config loads command configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Commands holds the environment defaults shared by the commands. Flags
// override them.
type Commands struct {
	Game      string `env:"GAMEFORMS_GAME" envDefault:"mixed_strategy"`
	Strict    bool   `env:"GAMEFORMS_STRICT" envDefault:"false"`
	MaxRounds int    `env:"GAMEFORMS_MAX_ROUNDS" envDefault:"100"`
	DebugAddr string `env:"GAMEFORMS_DEBUG_ADDR" envDefault:""`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target interface{}) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// LoadCommands returns the command defaults from the environment.
func LoadCommands() (Commands, error) {
	var cfg Commands
	err := ParseEnv(&cfg)
	return cfg, err
}
