package outrun

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
)

// placeObstacle appends an obstacle directly, bypassing the spawn policy.
func placeObstacle(g *Game, x, y float64) Obstacle {
	w := g.World()
	o := Obstacle{
		ID:   w.newID(),
		Pos:  core.Vec3{X: x, Y: y},
		Size: g.cfg.Obstacles.Size,
	}
	w.Obstacles = append(w.Obstacles, o)
	return o
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	w := g.World()

	if w.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", w.Phase)
	}
	if w.Score != 0 || w.Lives != 3 {
		t.Errorf("Score/Lives = %d/%d, expected 0/3", w.Score, w.Lives)
	}
	if len(w.Obstacles) != 0 {
		t.Errorf("expected no obstacles, got %d", len(w.Obstacles))
	}
	if w.Player.Pos != (core.Vec3{}) {
		t.Errorf("player should start centered, got %+v", w.Player.Pos)
	}
}

func TestSingleCollisionCostsOneLife(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	o := placeObstacle(g, g.World().Player.Pos.X, 4)

	var hitTick int
	for tick := 1; tick <= 40; tick++ {
		res := g.Step(core.NewInputFrame())
		if len(res.Hit) > 0 {
			if res.Hit[0] != o.ID {
				t.Fatalf("hit %v, expected %v", res.Hit, o.ID)
			}
			hitTick = tick
			break
		}
	}

	if hitTick == 0 {
		t.Fatal("obstacle falling onto the player never collided")
	}
	w := g.World()
	if w.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.Lives)
	}
	if len(w.Obstacles) != 0 {
		t.Errorf("colliding obstacle should be removed, %d left", len(w.Obstacles))
	}
	if w.Score != 0 {
		t.Errorf("a hit should not score, got %d", w.Score)
	}
	if w.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", w.Phase)
	}
}

func TestLastLifeEndsGameAndFreezes(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	w := g.World()
	w.Lives = 1

	// The first overlaps the player after this step, the second stays clear
	placeObstacle(g, 0, 0.1)
	bystander := placeObstacle(g, 3, 2)
	res := g.Step(input(core.ActionLeft))

	if !res.GameOver || w.Phase != PhaseGameOver {
		t.Fatalf("expected game over, result=%+v phase=%v", res, w.Phase)
	}
	if w.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", w.Lives)
	}

	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		res := g.Step(input(core.ActionLeft))
		if res.GameOver || len(res.Hit) > 0 || len(res.Despawned) > 0 {
			t.Fatalf("step after game over reported changes: %+v", res)
		}
	}
	after := g.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(after.Obstacles) != 1 || after.Obstacles[0].ID != bystander.ID {
		t.Errorf("remaining obstacles should stay frozen on screen, got %+v", after.Obstacles)
	}
}

func TestDespawnAfterFortyTicks(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	o := placeObstacle(g, 3, 4) // clear of the player

	for tick := 1; tick <= 39; tick++ {
		res := g.Step(core.NewInputFrame())
		if len(res.Despawned) > 0 {
			t.Fatalf("despawned early at tick %d", tick)
		}
	}
	if g.World().Score != 0 {
		t.Fatalf("Score = %d before despawn", g.World().Score)
	}

	res := g.Step(core.NewInputFrame())
	if len(res.Despawned) != 1 || res.Despawned[0] != o.ID {
		t.Fatalf("expected despawn of %v at tick 40, got %+v", o.ID, res.Despawned)
	}
	if g.World().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.World().Score)
	}
	if len(g.World().Obstacles) != 0 {
		t.Errorf("obstacle should be gone, %d left", len(g.World().Obstacles))
	}
}

func TestDespawnDoesNotSkipAdjacentEntries(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	placeObstacle(g, 3, -3.9)
	placeObstacle(g, -3, -3.9)
	keep := placeObstacle(g, 3, 2)
	placeObstacle(g, 2.5, -3.95)

	res := g.Step(core.NewInputFrame())

	if len(res.Despawned) != 3 {
		t.Errorf("expected 3 despawns, got %d", len(res.Despawned))
	}
	if g.World().Score != 3 {
		t.Errorf("Score = %d, expected 3", g.World().Score)
	}
	obs := g.World().Obstacles
	if len(obs) != 1 || obs[0].ID != keep.ID {
		t.Errorf("expected only %v to remain, got %+v", keep.ID, obs)
	}
}

func TestSimultaneousCollisionsNewestFirst(t *testing.T) {
	tests := []struct {
		name          string
		lives         int
		expectLives   int
		expectHits    int
		expectOver    bool
		expectRemains int
	}{
		{name: "enough lives for all", lives: 5, expectLives: 2, expectHits: 3, expectOver: false, expectRemains: 0},
		{name: "runs out mid-scan", lives: 2, expectLives: 0, expectHits: 2, expectOver: true, expectRemains: 1},
		{name: "exactly enough to end", lives: 3, expectLives: 0, expectHits: 3, expectOver: true, expectRemains: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(config.DefaultOutrunConfig(), 1)
			g.World().Lives = tc.lives
			a := placeObstacle(g, -0.2, 0.2)
			b := placeObstacle(g, 0, 0.2)
			c := placeObstacle(g, 0.2, 0.2)

			res := g.Step(core.NewInputFrame())

			expectedOrder := []EntityID{c.ID, b.ID, a.ID}[:tc.expectHits]
			if !reflect.DeepEqual(res.Hit, expectedOrder) {
				t.Errorf("Hit = %v, expected %v", res.Hit, expectedOrder)
			}
			if g.World().Lives != tc.expectLives {
				t.Errorf("Lives = %d, expected %d", g.World().Lives, tc.expectLives)
			}
			if res.GameOver != tc.expectOver {
				t.Errorf("GameOver = %v, expected %v", res.GameOver, tc.expectOver)
			}
			if len(g.World().Obstacles) != tc.expectRemains {
				t.Errorf("remaining = %d, expected %d", len(g.World().Obstacles), tc.expectRemains)
			}
			if tc.expectRemains == 1 && g.World().Obstacles[0].ID != a.ID {
				t.Errorf("oldest obstacle should survive, got %v", g.World().Obstacles[0].ID)
			}
		})
	}
}

func TestDespawnRunsBeforeCollision(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	g.World().Player.Size = 20 // reaches below the despawn line

	placeObstacle(g, 0, -3.9)

	res := g.Step(core.NewInputFrame())

	if len(res.Despawned) != 1 || len(res.Hit) != 0 {
		t.Errorf("obstacle past the despawn line must score, not hit: %+v", res)
	}
	if g.World().Lives != 3 {
		t.Errorf("Lives = %d, expected 3", g.World().Lives)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	p := &g.World().Player

	for i := 0; i < 100; i++ {
		g.Step(input(core.ActionLeft))
	}
	if p.Pos.X != -3.5 {
		t.Errorf("holding left should stop at -3.5, got %v", p.Pos.X)
	}

	for i := 0; i < 100; i++ {
		g.Step(input(core.ActionRight))
	}
	if p.Pos.X != 3.5 {
		t.Errorf("holding right should stop at 3.5, got %v", p.Pos.X)
	}
}

func TestPlayerStaysInBoundsForRandomInput(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	rng := rand.New(rand.NewSource(7))
	actions := []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight}

	for i := 0; i < 5000; i++ {
		in := input(actions[rng.Intn(3)], actions[rng.Intn(3)])
		g.Step(in)
		x := g.World().Player.Pos.X
		if x < -3.5 || x > 3.5 {
			t.Fatalf("player left bounds at step %d: x=%v", i, x)
		}
	}
}

func TestLeftAndRightAppliedSequentially(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	p := &g.World().Player

	// In the middle both steps apply and cancel out
	g.Step(input(core.ActionLeft, core.ActionRight))
	if p.Pos.X != 0 {
		t.Errorf("left+right from center should net zero, got %v", p.Pos.X)
	}

	// At the left bound only the right step applies
	p.Pos.X = -3.5
	g.Step(input(core.ActionLeft, core.ActionRight))
	if p.Pos.X <= -3.5 {
		t.Errorf("left+right at the left bound should drift right, got %v", p.Pos.X)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	cfg := config.DefaultOutrunConfig()
	g := NewGame(cfg, 99)
	rng := rand.New(rand.NewSource(3))

	prevLives := g.World().Lives
	prevScore := g.World().Score
	for tick := 1; tick <= 20000; tick++ {
		// Spawner fires every 500ms; at 60fps that is every 30 frames
		if tick%30 == 0 {
			g.Spawn()
		}

		var in core.InputFrame
		switch rng.Intn(3) {
		case 0:
			in = input(core.ActionLeft)
		case 1:
			in = input(core.ActionRight)
		default:
			in = core.NewInputFrame()
		}
		g.Step(in)

		w := g.World()
		if w.Lives < 0 || w.Lives > prevLives {
			t.Fatalf("tick %d: lives went from %d to %d", tick, prevLives, w.Lives)
		}
		if w.Score < prevScore {
			t.Fatalf("tick %d: score went from %d to %d", tick, prevScore, w.Score)
		}
		for _, o := range w.Obstacles {
			if o.Pos.Y < cfg.Obstacles.DespawnY {
				t.Fatalf("tick %d: obstacle %v below despawn line at y=%v", tick, o.ID, o.Pos.Y)
			}
		}
		if !w.Playing() && w.Lives != 0 {
			t.Fatalf("tick %d: game over with %d lives", tick, w.Lives)
		}
		prevLives, prevScore = w.Lives, w.Score
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := NewGame(config.DefaultOutrunConfig(), 12345)
		for tick := 1; tick <= 600; tick++ {
			if tick%30 == 0 {
				g.Spawn()
			}
			switch {
			case tick%50 < 20:
				g.Step(input(core.ActionLeft))
			case tick%50 < 40:
				g.Step(input(core.ActionRight))
			default:
				g.Step(core.NewInputFrame())
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Determinism failed:\nrun1 %+v\nrun2 %+v", snap1, snap2)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGame(config.DefaultOutrunConfig(), 1)
	placeObstacle(g, 3, 2)

	snap := g.Snapshot()
	snap.Obstacles[0].Y = 100

	if g.World().Obstacles[0].Pos.Y == 100 {
		t.Error("mutating a snapshot should not touch the world")
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "playing" || PhaseGameOver.String() != "game_over" {
		t.Errorf("unexpected phase names: %q %q", PhasePlaying, PhaseGameOver)
	}
}
