// Package config provides YAML-based configuration loading for the traffic
// game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TrafficConfig contains all configuration for the traffic game.
type TrafficConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemiesConfig `yaml:"enemies"`
	Road    RoadConfig    `yaml:"road"`
	Input   InputConfig   `yaml:"input"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"` // Horizontal speed, units per second
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartOffset float64 `yaml:"start_offset"` // Center distance above the bottom edge
}

// EnemiesConfig defines enemy cars and the spawn cadence.
type EnemiesConfig struct {
	Speed         float64 `yaml:"speed"` // Downward speed, units per second
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnPeriodMS int     `yaml:"spawn_period_ms"`
	Reward        int     `yaml:"reward"`
}

// RoadConfig defines the scrolling background.
type RoadConfig struct {
	ScrollRate float64 `yaml:"scroll_rate"` // Offset added per frame
}

// InputConfig defines keyboard polling behaviour.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// SpawnPeriod returns the spawn timer period.
func (c EnemiesConfig) SpawnPeriod() time.Duration {
	return time.Duration(c.SpawnPeriodMS) * time.Millisecond
}

// HoldWindow returns how long a key press counts as held.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Validate reports every invalid field of the configuration.
func (c TrafficConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("enemies.speed", c.Enemies.Speed)
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	positive("enemies.spawn_period_ms", float64(c.Enemies.SpawnPeriodMS))

	if c.Player.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("player.width %v exceeds world.width %v", c.Player.Width, c.World.Width))
	}
	if c.Player.StartOffset < 0 || c.Player.StartOffset > c.World.Height {
		errs = append(errs, fmt.Errorf("player.start_offset must be within [0, %v], got %v", c.World.Height, c.Player.StartOffset))
	}
	if c.Enemies.Reward < 0 {
		errs = append(errs, fmt.Errorf("enemies.reward must not be negative, got %d", c.Enemies.Reward))
	}
	if c.Road.ScrollRate < 0 {
		errs = append(errs, fmt.Errorf("road.scroll_rate must not be negative, got %v", c.Road.ScrollRate))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid traffic config: %w", errors.Join(errs...))
	}
	return nil
}
