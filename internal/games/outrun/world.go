// Package outrun implements Obstacle Outrun: a player cube dodges cubes that
// fall from the top of the lane. Dodged obstacles score a point, hits cost a
// life, and the session ends when no lives are left.
package outrun

import (
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
)

// EntityID identifies the player or an obstacle for the presentation layer.
type EntityID uint64

// PlayerID is the fixed identity of the player entity.
const PlayerID EntityID = 1

// Kind tells the presentation layer how to draw an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
)

// Phase is the coarse session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the cube steered by the user. Only x changes.
type Player struct {
	Pos  core.Vec3
	Size float64
}

// Box returns the player's bounding volume.
func (p Player) Box() core.Box {
	return core.BoxAround(p.Pos, p.Size)
}

// Obstacle is a falling cube.
type Obstacle struct {
	ID   EntityID
	Pos  core.Vec3
	Size float64
}

// Box returns the obstacle's bounding volume.
func (o Obstacle) Box() core.Box {
	return core.BoxAround(o.Pos, o.Size)
}

// World holds all mutable state of one session.
// Obstacles are kept in spawn order.
type World struct {
	Player    Player
	Obstacles []Obstacle
	Score     int
	Lives     int
	Phase     Phase

	nextID EntityID
}

// NewWorld returns the initial state: player centered, no obstacles,
// full lives, playing.
func NewWorld(cfg config.OutrunConfig) *World {
	return &World{
		Player: Player{
			Pos:  core.Vec3{},
			Size: cfg.Player.Size,
		},
		Obstacles: make([]Obstacle, 0, 16),
		Lives:     cfg.Gameplay.Lives,
		Phase:     PhasePlaying,
		nextID:    PlayerID + 1,
	}
}

func (w *World) newID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Playing reports whether the session still accepts mutations.
func (w *World) Playing() bool {
	return w.Phase == PhasePlaying
}

// State returns the HUD-facing view of the world.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Score,
		Lives:    w.Lives,
		GameOver: w.Phase == PhaseGameOver,
	}
}
