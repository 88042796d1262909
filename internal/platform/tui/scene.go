package tui

import (
	"math"
	"slices"
	"unicode/utf8"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/games/outrun"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Glyphs used by the scene.
const (
	playerRune   = '█'
	obstacleRune = '▓'
	laneRune     = '┊'
)

// Camera is a perspective camera on the z axis, looking toward -z.
type Camera struct {
	Z   float64 // Distance from the world plane
	FOV float64 // Vertical field of view in degrees
}

// DefaultCamera returns the camera at z=5 with a 75° field of view.
func DefaultCamera() Camera {
	return Camera{Z: 5, FOV: 75}
}

// halfExtents returns half the visible width and height, in world units, of
// the plane at depth z seen through a w×h cell viewport.
func (c Camera) halfExtents(z float64, w, h int) (halfW, halfH float64) {
	depth := c.Z - z
	if depth <= 0 || w <= 0 || h <= 0 {
		return 0, 0
	}
	halfH = depth * math.Tan(c.FOV*math.Pi/360)
	aspect := float64(w) / (float64(h) * cellAspect)
	return halfH * aspect, halfH
}

// Project maps a world point to fractional cell coordinates in a w×h
// viewport. The world origin lands in the middle of the viewport.
func (c Camera) Project(p core.Vec3, w, h int) (col, row float64) {
	halfW, halfH := c.halfExtents(p.Z, w, h)
	if halfW == 0 || halfH == 0 {
		return 0, 0
	}
	col = (p.X + halfW) / (2 * halfW) * float64(w)
	row = (halfH - p.Y) / (2 * halfH) * float64(h)
	return col, row
}

// CubeRect returns the cells covered by a cube of edge size centered at p.
// A visible cube always covers at least one cell.
func (c Camera) CubeRect(p core.Vec3, size float64, w, h int) core.Rect {
	halfW, halfH := c.halfExtents(p.Z, w, h)
	if halfW == 0 || halfH == 0 {
		return core.Rect{}
	}
	col, row := c.Project(p, w, h)
	cw := size / (2 * halfW) * float64(w)
	ch := size / (2 * halfH) * float64(h)

	x0 := int(math.Round(col - cw/2))
	x1 := int(math.Round(col + cw/2))
	y0 := int(math.Round(row - ch/2))
	y1 := int(math.Round(row + ch/2))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

type sceneEntity struct {
	kind outrun.Kind
	pos  core.Vec3
	size float64
}

// Scene is the terminal Presenter. It remembers every entity it was told
// about and projects them into a cell buffer on Redraw.
type Scene struct {
	camera   Camera
	lane     float64
	entities map[outrun.EntityID]sceneEntity
	screen   *core.Screen
	redraws  int
	banner   []string
}

var _ outrun.Presenter = (*Scene)(nil)

// NewScene creates an empty w×h scene. Lane markers are drawn at x=±lane;
// zero disables them.
func NewScene(w, h int, lane float64) *Scene {
	return &Scene{
		camera:   DefaultCamera(),
		lane:     lane,
		entities: make(map[outrun.EntityID]sceneEntity),
		screen:   core.NewScreen(w, h),
	}
}

// Add registers a new entity.
func (s *Scene) Add(id outrun.EntityID, kind outrun.Kind, pos core.Vec3, size float64) {
	s.entities[id] = sceneEntity{kind: kind, pos: pos, size: size}
}

// Move updates an entity's position. Unknown IDs are ignored.
func (s *Scene) Move(id outrun.EntityID, pos core.Vec3) {
	e, ok := s.entities[id]
	if !ok {
		return
	}
	e.pos = pos
	s.entities[id] = e
}

// Remove forgets an entity. Unknown IDs are ignored.
func (s *Scene) Remove(id outrun.EntityID) {
	delete(s.entities, id)
}

// Redraw projects the current entities into the buffer.
func (s *Scene) Redraw() {
	s.redraws++
	s.render()
}

// Resize changes the viewport and redraws what is already known, so a
// frozen game-over scene survives a terminal resize.
func (s *Scene) Resize(w, h int) {
	s.screen.Resize(w, h)
	s.render()
}

// SetBanner boxes lines in the middle of the scene on every render. No
// lines removes the banner. The buffer is re-rendered right away so a frozen
// scene shows the change.
func (s *Scene) SetBanner(lines ...string) {
	s.banner = lines
	s.render()
}

// Banner returns the lines currently drawn over the scene.
func (s *Scene) Banner() []string {
	return s.banner
}

// Screen returns the cell buffer of the last redraw.
func (s *Scene) Screen() *core.Screen {
	return s.screen
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Redraws returns how many times Redraw was called.
func (s *Scene) Redraws() int {
	return s.redraws
}

func (s *Scene) render() {
	s.screen.Clear()
	w, h := s.screen.Width(), s.screen.Height()

	if s.lane > 0 {
		for _, x := range []float64{-s.lane, s.lane} {
			col, _ := s.camera.Project(core.Vec3{X: x}, w, h)
			c := int(math.Round(col))
			for y := 0; y < h; y++ {
				s.screen.SetColored(c, y, laneRune, core.ColorGray)
			}
		}
	}

	// Obstacles in spawn order, then the player on top.
	ids := make([]outrun.EntityID, 0, len(s.entities))
	for id, e := range s.entities {
		if e.kind == outrun.KindObstacle {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		e := s.entities[id]
		s.screen.FillRect(s.camera.CubeRect(e.pos, e.size, w, h), obstacleRune, core.ColorBrightRed)
	}

	for _, e := range s.entities {
		if e.kind == outrun.KindPlayer {
			s.screen.FillRect(s.camera.CubeRect(e.pos, e.size, w, h), playerRune, core.ColorBrightGreen)
		}
	}

	s.drawBanner()
}

// drawBanner boxes the banner lines around the middle of the screen. Lines
// wider than the screen are clipped on both sides.
func (s *Scene) drawBanner() {
	if len(s.banner) == 0 {
		return
	}
	w, h := s.screen.Width(), s.screen.Height()

	inner := 0
	for _, line := range s.banner {
		inner = max(inner, utf8.RuneCountInString(line))
	}
	boxW := min(inner+4, w)
	boxH := min(len(s.banner)+2, h)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	s.screen.FillRect(box, ' ', core.ColorWhite)
	s.screen.DrawBox(box)
	for i, line := range s.banner {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		s.screen.DrawTextCentered(y, line)
	}
}
