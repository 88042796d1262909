package outrun

// Snapshot captures the complete game state for determinism testing and for
// UI layers that poll rather than subscribe.
type Snapshot struct {
	Tick      uint64
	PlayerX   float64
	Score     int
	Lives     int
	Phase     Phase
	Obstacles []ObstacleSnapshot
}

// ObstacleSnapshot is the position of one live obstacle.
type ObstacleSnapshot struct {
	ID EntityID
	X  float64
	Y  float64
}

// Snapshot returns a copy of the current state. It shares no memory with
// the game.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	obstacles := make([]ObstacleSnapshot, len(w.Obstacles))
	for i, o := range w.Obstacles {
		obstacles[i] = ObstacleSnapshot{ID: o.ID, X: o.Pos.X, Y: o.Pos.Y}
	}

	return Snapshot{
		Tick:      g.tickCount,
		PlayerX:   w.Player.Pos.X,
		Score:     w.Score,
		Lives:     w.Lives,
		Phase:     w.Phase,
		Obstacles: obstacles,
	}
}
