// Package core provides the geometry, input and screen primitives shared by
// the game and the terminal platform. It has no external dependencies (no
// Bubble Tea) so game logic stays pure and testable.
package core

// Vec3 is a point in world units.
type Vec3 struct {
	X, Y, Z float64
}

// Box is an axis-aligned bounding box in world units.
type Box struct {
	Min, Max Vec3
}

// BoxAround returns the cube of edge length size centered on center.
func BoxAround(center Vec3, size float64) Box {
	h := size / 2
	return Box{
		Min: Vec3{X: center.X - h, Y: center.Y - h, Z: center.Z - h},
		Max: Vec3{X: center.X + h, Y: center.Y + h, Z: center.Z + h},
	}
}

// Intersects reports whether the two boxes overlap on every axis.
// Boxes that only share a face, edge or corner do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	if b.Min.Z >= o.Max.Z || o.Min.Z >= b.Max.Z {
		return false
	}
	return true
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
