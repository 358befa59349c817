package pathmorphing

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned bounding rectangle. The zero value of interest is
// the empty sentinel produced by EmptyRect, which any expansion replaces.
type Rect struct {
	Min, Max PathOffset
}

// EmptyRect returns the sentinel rectangle that contains nothing. Expanding
// it by any point yields a rectangle containing exactly that point.
func EmptyRect() Rect {
	return Rect{
		Min: PathOffset{math.Inf(1), math.Inf(1)},
		Max: PathOffset{math.Inf(-1), math.Inf(-1)},
	}
}

// IsEmpty reports whether the rectangle is still the untouched sentinel.
func (r Rect) IsEmpty() bool {
	return r.Min.Dx > r.Max.Dx || r.Min.Dy > r.Max.Dy
}

// ExpandToPoint grows the rectangle to include the given point.
func (r *Rect) ExpandToPoint(p PathOffset) {
	r.Min.Dx = math.Min(r.Min.Dx, p.Dx)
	r.Min.Dy = math.Min(r.Min.Dy, p.Dy)
	r.Max.Dx = math.Max(r.Max.Dx, p.Dx)
	r.Max.Dy = math.Max(r.Max.Dy, p.Dy)
}

// ExpandToRect grows the rectangle to include another rectangle. Expanding by
// an empty rectangle is a no-op.
func (r *Rect) ExpandToRect(other Rect) {
	if other.IsEmpty() {
		return
	}
	r.ExpandToPoint(other.Min)
	r.ExpandToPoint(other.Max)
}

// Contains reports whether the point lies within the rectangle, edges
// included.
func (r Rect) Contains(p PathOffset) bool {
	return p.Dx >= r.Min.Dx && p.Dx <= r.Max.Dx &&
		p.Dy >= r.Min.Dy && p.Dy <= r.Max.Dy
}

// Width returns the horizontal extent, or 0 for an empty rectangle.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Dx - r.Min.Dx
}

// Height returns the vertical extent, or 0 for an empty rectangle.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Dy - r.Min.Dy
}

// String returns a string representation of the Rect.
func (r Rect) String() string {
	return fmt.Sprintf("Rect{%f,%f,%f,%f}", r.Min.Dx, r.Min.Dy, r.Max.Dx, r.Max.Dy)
}
