package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeonturn/internal/logging"
	"github.com/samdwyer/dungeonturn/internal/telemetry"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SEED" envDefault:"0"`

	MapWidth           int `env:"MAP_WIDTH" envDefault:"80"`
	MapHeight          int `env:"MAP_HEIGHT" envDefault:"43"`
	FOVRadius          int `env:"FOV_RADIUS" envDefault:"8"`
	MaxMonstersPerRoom int `env:"MAX_MONSTERS_PER_ROOM" envDefault:"2"`

	Logging   logging.Config
	Telemetry telemetry.Config
}

// LoadConfig parses the process environment.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

// LoadConfigFrom parses the given variables instead of the process environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: vars})
}

func parseConfig(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes the dungeon generator cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if c.FOVRadius <= 0 {
		errs = append(errs, fmt.Errorf("fov radius must be positive, got %d", c.FOVRadius))
	}
	if c.MaxMonstersPerRoom < 0 {
		errs = append(errs, fmt.Errorf("max monsters per room must not be negative, got %d", c.MaxMonstersPerRoom))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
