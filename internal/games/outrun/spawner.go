package outrun

import (
	"math/rand"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
)

// Spawner is the only place obstacles enter the world.
type Spawner struct {
	rng       *rand.Rand
	spawn     config.SpawnConfig
	obstacles config.ObstacleConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.OutrunConfig) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		spawn:     cfg.Spawn,
		obstacles: cfg.Obstacles,
	}
}

// SpawnX picks the x-coordinate for a new obstacle. Some spawns target the
// player's current position to force a dodge; the rest are uniform across
// the lane.
func (s *Spawner) SpawnX(playerX float64) float64 {
	if s.rng.Float64() < s.spawn.TargetChance {
		return playerX + s.uniform(s.spawn.TargetSpread)
	}
	return s.uniform(s.spawn.Range)
}

// uniform returns a value in [-half, half).
func (s *Spawner) uniform(half float64) float64 {
	return s.rng.Float64()*2*half - half
}

// Spawn adds one obstacle at the spawn height. It does nothing once the
// game is over.
func (s *Spawner) Spawn(w *World) (Obstacle, bool) {
	if !w.Playing() {
		return Obstacle{}, false
	}

	o := Obstacle{
		ID: w.newID(),
		Pos: core.Vec3{
			X: s.SpawnX(w.Player.Pos.X),
			Y: s.obstacles.SpawnY,
		},
		Size: s.obstacles.Size,
	}
	w.Obstacles = append(w.Obstacles, o)
	return o, true
}
