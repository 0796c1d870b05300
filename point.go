package polyclip

import (
	"math"

	"github.com/gogpu/polyclip/backend"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// Rect is an axis-aligned rectangle given by its edges.
// Rectangles are only used as input to RectClip and RectClipLines,
// and as the result of Bounds.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a Rect from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains returns true if the point is inside the rectangle or on its edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// emptyBounds is the identity for unionPoint.
func emptyBounds() Rect {
	return Rect{
		Left: math.Inf(1), Top: math.Inf(1),
		Right: math.Inf(-1), Bottom: math.Inf(-1),
	}
}

func (r Rect) unionPoint(x, y float64) Rect {
	return Rect{
		Left:   math.Min(r.Left, x),
		Top:    math.Min(r.Top, y),
		Right:  math.Max(r.Right, x),
		Bottom: math.Max(r.Bottom, y),
	}
}

// wire converts r to the engine's CRectD layout.
func (r Rect) wire() backend.Rect {
	return backend.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
