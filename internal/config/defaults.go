package config

import (
	_ "embed"
)

//go:embed defaults/traffic.yaml
var defaultTrafficYAML []byte

// DefaultTrafficConfig returns the built-in traffic configuration.
// The values mirror defaults/traffic.yaml.
func DefaultTrafficConfig() TrafficConfig {
	return TrafficConfig{
		World: WorldConfig{
			Width:  600,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:       300, // 5 units per frame at 60fps
			Width:       32,
			Height:      48,
			StartOffset: 64,
		},
		Enemies: EnemiesConfig{
			Speed:         180,
			Width:         32,
			Height:        48,
			SpawnPeriodMS: 1000,
			Reward:        10,
		},
		Road: RoadConfig{
			ScrollRate: 3,
		},
		Input: InputConfig{
			HoldMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTrafficYAML
}
