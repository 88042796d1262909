package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.outrun/configs/outrun.yaml -> ./configs/outrun.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (OutrunConfig, error) {
	cfg := DefaultOutrunConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("outrun.yaml"), filepath.Join("configs", "outrun.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if fileCfg, ok := tryLoad(path); ok {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOutrunYAML, &cfg); err != nil {
		return DefaultOutrunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next candidate can be used.
func tryLoad(path string) (OutrunConfig, bool) {
	cfg := DefaultOutrunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".outrun", "configs", filename)
}

// Validate reports every out-of-range field.
func (c OutrunConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.size", c.Player.Size)
	positive("player.step", c.Player.Step)
	positive("obstacles.size", c.Obstacles.Size)
	positive("obstacles.fall_step", c.Obstacles.FallStep)
	positive("spawn.interval_ms", float64(c.Spawn.IntervalMS))
	positive("timing.score_refresh_ms", float64(c.Timing.ScoreRefreshMS))
	positive("gameplay.lives", float64(c.Gameplay.Lives))

	if c.Player.MinX >= c.Player.MaxX {
		errs = append(errs, fmt.Errorf("player.min_x (%v) must be below player.max_x (%v)", c.Player.MinX, c.Player.MaxX))
	}
	if c.Obstacles.DespawnY >= c.Obstacles.SpawnY {
		errs = append(errs, fmt.Errorf("obstacles.despawn_y (%v) must be below obstacles.spawn_y (%v)", c.Obstacles.DespawnY, c.Obstacles.SpawnY))
	}
	if c.Spawn.TargetChance < 0 || c.Spawn.TargetChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.target_chance must be in [0, 1], got %v", c.Spawn.TargetChance))
	}
	if c.Spawn.TargetSpread < 0 {
		errs = append(errs, fmt.Errorf("spawn.target_spread must not be negative, got %v", c.Spawn.TargetSpread))
	}
	if c.Spawn.Range < 0 {
		errs = append(errs, fmt.Errorf("spawn.range must not be negative, got %v", c.Spawn.Range))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS))
	}

	return errors.Join(errs...)
}
