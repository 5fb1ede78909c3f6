package config

import (
	"os"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{
		"GAMEFORMS_GAME", "GAMEFORMS_STRICT", "GAMEFORMS_MAX_ROUNDS", "GAMEFORMS_DEBUG_ADDR",
	} {
		// Setenv restores the original value when the test ends.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadCommandsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadCommands()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}

	expected := Commands{Game: "mixed_strategy", MaxRounds: 100}
	if cfg != expected {
		t.Errorf("got %+v, expected %+v", cfg, expected)
	}
}

func TestLoadCommandsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GAMEFORMS_GAME", "centipede")
	t.Setenv("GAMEFORMS_STRICT", "true")
	t.Setenv("GAMEFORMS_MAX_ROUNDS", "7")

	cfg, err := LoadCommands()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Game != "centipede" || !cfg.Strict || cfg.MaxRounds != 7 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("GAMEFORMS_MAX_ROUNDS", "not-an-int")

	_, err := LoadCommands()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
