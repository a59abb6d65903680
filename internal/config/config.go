// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"math/rand"
	"time"

	"shadowdelve/internal/generate"

	"github.com/caarlos0/env/v11"
)

// Config is the full set of runtime settings. Every field can be set from a
// SHADOWDELVE_-prefixed environment variable; command-line flags override.
type Config struct {
	Width              int    `env:"WIDTH" envDefault:"80"`
	Height             int    `env:"HEIGHT" envDefault:"43"`
	MaxRooms           int    `env:"MAX_ROOMS" envDefault:"30"`
	RoomMinSize        int    `env:"ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize        int    `env:"ROOM_MAX_SIZE" envDefault:"10"`
	MaxMonstersPerRoom int    `env:"MAX_MONSTERS_PER_ROOM" envDefault:"3"`
	MaxItemsPerRoom    int    `env:"MAX_ITEMS_PER_ROOM" envDefault:"2"`
	FOVRadius          int    `env:"FOV_RADIUS" envDefault:"10"`
	Seed               int64  `env:"SEED" envDefault:"0"`
	Theme              string `env:"THEME" envDefault:"classic"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	SSHPort    int    `env:"SSH_PORT" envDefault:"2222"`
	SSHHostKey string `env:"SSH_HOST_KEY" envDefault:"server_host_key"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "SHADOWDELVE_"

// Load reads the environment into a Config with defaults applied.
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

func parse(opts env.Options) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Validate checks the settings that are not covered by the generator.
func (c Config) Validate() error {
	if c.FOVRadius < 0 {
		return fmt.Errorf("fov radius %d: must not be negative", c.FOVRadius)
	}
	if c.SSHPort <= 0 || c.SSHPort > 65535 {
		return fmt.Errorf("ssh port %d: out of range", c.SSHPort)
	}
	if err := c.GenerateConfig(rand.New(rand.NewSource(1))).Validate(); err != nil {
		return fmt.Errorf("dungeon settings: %w", err)
	}
	return nil
}

// Rand returns a generator seeded from Seed, or from the clock when Seed is 0.
// The effective seed is returned so runs can be reproduced.
func (c Config) Rand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// GenerateConfig builds the generator settings using rng.
func (c Config) GenerateConfig(rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Width:              c.Width,
		Height:             c.Height,
		MaxRooms:           c.MaxRooms,
		RoomMinSize:        c.RoomMinSize,
		RoomMaxSize:        c.RoomMaxSize,
		MaxMonstersPerRoom: c.MaxMonstersPerRoom,
		MaxItemsPerRoom:    c.MaxItemsPerRoom,
		Rand:               rng,
	}
}
