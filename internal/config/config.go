// Package config provides YAML-based game configuration loading for
// Obstacle Outrun, plus .env support for the SSH server settings.
package config

import "time"

// OutrunConfig contains all tunables for the game.
type OutrunConfig struct {
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Timing    TimingConfig   `yaml:"timing"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
	Input     InputConfig    `yaml:"input"`
}

// PlayerConfig defines the player cube and its movement.
type PlayerConfig struct {
	Size float64 `yaml:"size"`
	Step float64 `yaml:"step"`
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Size     float64 `yaml:"size"`
	FallStep float64 `yaml:"fall_step"`
	SpawnY   float64 `yaml:"spawn_y"`
	DespawnY float64 `yaml:"despawn_y"`
}

// SpawnConfig defines the spawn timer and x-position policy.
type SpawnConfig struct {
	IntervalMS   int     `yaml:"interval_ms"`
	TargetChance float64 `yaml:"target_chance"` // Probability of spawning near the player
	TargetSpread float64 `yaml:"target_spread"` // Half-width of the targeted spawn window
	Range        float64 `yaml:"range"`         // Half-width of the uniform spawn lane
}

// TimingConfig defines UI refresh timing.
type TimingConfig struct {
	ScoreRefreshMS int `yaml:"score_refresh_ms"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// Interval returns the spawn interval.
func (s SpawnConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// ScoreRefresh returns the score display refresh interval.
func (t TimingConfig) ScoreRefresh() time.Duration {
	return time.Duration(t.ScoreRefreshMS) * time.Millisecond
}

// Hold returns how long a key counts as held after its last press.
func (i InputConfig) Hold() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}
