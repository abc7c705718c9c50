package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds development overrides read from the process environment.
type EnvConfig struct {
	// Debug enables the F3 overlay and loud content validation.
	Debug bool `env:"STARLOCK_DEBUG"`

	// RoomDir, when set, loads rooms from this directory instead of the
	// embedded ones and hot-reloads them on change.
	RoomDir string `env:"STARLOCK_ROOM_DIR"`

	// NoDurable disables the on-disk save file; progress lives in memory
	// only for the session.
	NoDurable bool `env:"STARLOCK_NO_DURABLE"`

	// SkipMenu boots straight into the world. Pairs well with RoomDir when
	// iterating on a room.
	SkipMenu bool `env:"STARLOCK_SKIP_MENU"`
}

// Env is the active environment configuration, populated by LoadEnv.
var Env EnvConfig

// LoadEnv parses the STARLOCK_* environment overrides. Called once from main.
func LoadEnv() error {
	if err := env.Parse(&Env); err != nil {
		return fmt.Errorf("parse environment config: %w", err)
	}
	return nil
}
