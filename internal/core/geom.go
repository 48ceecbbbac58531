// Package core provides fundamental types and utilities shared by the engine
// and its adapters. It has no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. The world is y-up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// AABB is an axis-aligned bounding box given by its center and full size.
type AABB struct {
	Center Vec2
	Size   Vec2
}

// NewAABB creates a box centered at c with full extent size.
func NewAABB(c, size Vec2) AABB {
	return AABB{Center: c, Size: size}
}

// Min returns the lower-left corner.
func (b AABB) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner.
func (b AABB) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Side identifies which face of a box was struck.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether s is the left or right face.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// TestOverlap checks whether a overlaps b and, if so, which face of b was hit.
//
// Penetration is measured per axis as the length of the shared interval; a
// zero or negative value on either axis means no collision, so boxes that only
// touch do not collide. The axis with the smaller penetration decides the
// side. Equal penetration resolves to the vertical face.
func TestOverlap(a, b AABB) (Side, bool) {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	overlapX := math.Min(aMax.X, bMax.X) - math.Max(aMin.X, bMin.X)
	overlapY := math.Min(aMax.Y, bMax.Y) - math.Max(aMin.Y, bMin.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return SideNone, false
	}

	if overlapX < overlapY {
		if a.Center.X <= b.Center.X {
			return SideLeft, true
		}
		return SideRight, true
	}
	if a.Center.Y <= b.Center.Y {
		return SideBottom, true
	}
	return SideTop, true
}

// Rect represents an integer axis-aligned rectangle in screen cells.
// Used by adapters for layout and pointer hit-testing.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
