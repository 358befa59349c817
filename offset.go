package pathmorphing

import (
	"fmt"
	"math"
)

// PathOffset represents a 2D point with X and Y coordinates.
type PathOffset struct {
	Dx, Dy float64
}

// ZeroPathOffset returns a PathOffset with zero values.
func ZeroPathOffset() PathOffset {
	return PathOffset{0.0, 0.0}
}

// Direction returns the angle in radians of the vector.
func (p PathOffset) Direction() float64 {
	return math.Atan2(p.Dy, p.Dx)
}

// Translate returns a new PathOffset translated by the given amounts.
func (p PathOffset) Translate(translateX, translateY float64) PathOffset {
	return PathOffset{p.Dx + translateX, p.Dy + translateY}
}

// Add returns the sum of two PathOffsets.
func (p PathOffset) Add(other PathOffset) PathOffset {
	return PathOffset{p.Dx + other.Dx, p.Dy + other.Dy}
}

// Subtract returns the difference between two PathOffsets.
func (p PathOffset) Subtract(other PathOffset) PathOffset {
	return PathOffset{p.Dx - other.Dx, p.Dy - other.Dy}
}

// Multiply returns the PathOffset scaled by the given factor.
func (p PathOffset) Multiply(operand float64) PathOffset {
	return PathOffset{p.Dx * operand, p.Dy * operand}
}

// Distance returns the Euclidean distance to another PathOffset.
func (p PathOffset) Distance(other PathOffset) float64 {
	return math.Hypot(other.Dx-p.Dx, other.Dy-p.Dy)
}

// Lerp returns the componentwise linear interpolation towards other at
// fraction t.
func (p PathOffset) Lerp(other PathOffset, t float64) PathOffset {
	return PathOffset{
		p.Dx + (other.Dx-p.Dx)*t,
		p.Dy + (other.Dy-p.Dy)*t,
	}
}

// String returns a string representation of the PathOffset.
func (p PathOffset) String() string {
	return fmt.Sprintf("PathOffset{%f,%f}", p.Dx, p.Dy)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
