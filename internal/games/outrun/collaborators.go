package outrun

import "github.com/utsabpanta/threejs-obstacle-outrun/internal/core"

// Presenter draws entities. The game never reads geometry back from it.
type Presenter interface {
	// Add creates the visual for a new entity.
	Add(id EntityID, kind Kind, pos core.Vec3, size float64)
	// Move updates an entity's position.
	Move(id EntityID, pos core.Vec3)
	// Remove destroys an entity's visual. Unknown IDs are ignored.
	Remove(id EntityID)
	// Redraw marks the frame as ready to display.
	Redraw()
}

// UI shows score, lives and the game-over state.
type UI interface {
	ShowScore(score int)
	ShowLives(lives int)
	ShowGameOver(finalScore int)
}

type nopPresenter struct{}

func (nopPresenter) Add(EntityID, Kind, core.Vec3, float64) {}
func (nopPresenter) Move(EntityID, core.Vec3)               {}
func (nopPresenter) Remove(EntityID)                        {}
func (nopPresenter) Redraw()                                {}

type nopUI struct{}

func (nopUI) ShowScore(int)    {}
func (nopUI) ShowLives(int)    {}
func (nopUI) ShowGameOver(int) {}
