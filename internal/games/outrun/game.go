package outrun

import (
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
)

// StepResult reports what one frame changed.
type StepResult struct {
	Despawned []EntityID // Obstacles that fell off the bottom (one point each)
	Hit       []EntityID // Obstacles that hit the player (one life each)
	GameOver  bool       // Lives ran out during this frame
	State     core.GameState
}

// Game owns the world and applies the per-frame rules to it.
type Game struct {
	world     *World
	spawner   *Spawner
	cfg       config.OutrunConfig
	tickCount uint64
}

// NewGame creates a fresh game. There is no in-place reset: a restart
// builds a new Game.
func NewGame(cfg config.OutrunConfig, seed int64) *Game {
	return &Game{
		world:   NewWorld(cfg),
		spawner: NewSpawner(seed, cfg),
		cfg:     cfg,
	}
}

// World exposes the state for rendering and tests.
func (g *Game) World() *World {
	return g.world
}

// State returns the current score, lives and game-over flag.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// Spawn drops one new obstacle. No-op after game over.
func (g *Game) Spawn() (Obstacle, bool) {
	return g.spawner.Spawn(g.world)
}

// Step advances the game by one frame: move the player, advance and
// despawn obstacles, then resolve collisions. The order is fixed.
// After game over Step changes nothing.
func (g *Game) Step(in core.InputFrame) StepResult {
	if !g.world.Playing() {
		return StepResult{State: g.State()}
	}

	g.tickCount++

	g.movePlayer(in)
	despawned := g.advanceObstacles()
	hit, over := g.resolveCollisions()

	return StepResult{
		Despawned: despawned,
		Hit:       hit,
		GameOver:  over,
		State:     g.State(),
	}
}

// movePlayer applies left then right against the already-updated position,
// so both held at once can leave a small drift near a bound.
func (g *Game) movePlayer(in core.InputFrame) {
	p := &g.world.Player
	pc := g.cfg.Player

	if in.Has(core.ActionLeft) && p.Pos.X > pc.MinX {
		p.Pos.X = core.ClampF(p.Pos.X-pc.Step, pc.MinX, pc.MaxX)
	}
	if in.Has(core.ActionRight) && p.Pos.X < pc.MaxX {
		p.Pos.X = core.ClampF(p.Pos.X+pc.Step, pc.MinX, pc.MaxX)
	}
}

// advanceObstacles moves every obstacle down and removes the ones below the
// despawn line, compacting in place so no entry is skipped.
func (g *Game) advanceObstacles() []EntityID {
	var despawned []EntityID
	oc := g.cfg.Obstacles

	kept := g.world.Obstacles[:0]
	for _, o := range g.world.Obstacles {
		o.Pos.Y -= oc.FallStep
		if o.Pos.Y < oc.DespawnY {
			despawned = append(despawned, o.ID)
			g.world.Score++
			continue
		}
		kept = append(kept, o)
	}
	g.world.Obstacles = kept

	return despawned
}

// resolveCollisions tests the player against obstacles from newest to
// oldest. Each hit removes the obstacle and costs a life; the scan stops as
// soon as lives reach zero.
func (g *Game) resolveCollisions() (hit []EntityID, over bool) {
	w := g.world
	playerBox := w.Player.Box()

	for i := len(w.Obstacles) - 1; i >= 0; i-- {
		o := w.Obstacles[i]
		if !playerBox.Intersects(o.Box()) {
			continue
		}

		w.Obstacles = append(w.Obstacles[:i], w.Obstacles[i+1:]...)
		hit = append(hit, o.ID)
		w.Lives--

		if w.Lives <= 0 {
			w.Lives = 0
			w.Phase = PhaseGameOver
			return hit, true
		}
	}
	return hit, false
}
