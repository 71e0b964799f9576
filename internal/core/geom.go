// Package core provides fundamental types and utilities for the flappy engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point or displacement in world space.
// World space has its origin at the screen center with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// Size holds the full width and height of an axis-aligned box.
type Size struct {
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// Box is an axis-aligned bounding box anchored at its center.
type Box struct {
	Center Vec2
	Size   Size
}

// NewBox creates a box centered at c with the given size.
func NewBox(c Vec2, s Size) Box {
	return Box{Center: c, Size: s}
}

// Overlaps reports whether two boxes intersect.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	xOverlap := AbsF(b.Center.X-other.Center.X) < (b.Size.W+other.Size.W)/2
	yOverlap := AbsF(b.Center.Y-other.Center.Y) < (b.Size.H+other.Size.H)/2
	return xOverlap && yOverlap
}

// Rect represents an integer cell rectangle on a Screen.
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
