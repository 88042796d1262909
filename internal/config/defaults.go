package config

import (
	_ "embed"
)

//go:embed defaults/outrun.yaml
var defaultOutrunYAML []byte

// DefaultOutrunConfig returns the built-in configuration.
func DefaultOutrunConfig() OutrunConfig {
	return OutrunConfig{
		Player: PlayerConfig{
			Size: 1.0,
			Step: 0.15,
			MinX: -3.5,
			MaxX: 3.5,
		},
		Obstacles: ObstacleConfig{
			Size:     0.5,
			FallStep: 0.2,
			SpawnY:   4.0,
			DespawnY: -4.0,
		},
		Spawn: SpawnConfig{
			IntervalMS:   500,
			TargetChance: 0.3,
			TargetSpread: 0.3,
			Range:        3.0,
		},
		Timing: TimingConfig{
			ScoreRefreshMS: 200,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			HoldMS: 300,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultOutrunYAML
}
