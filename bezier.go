package pathmorphing

import "math"

// CubicBezier is the canonical curve representation used throughout the
// engine. Lines and quadratic curves are carried as degenerate or
// degree-elevated cubics so that measurement, projection and splitting never
// special-case the source variant.
type CubicBezier struct {
	P0, P1, P2, P3 PathOffset
}

// lineCubic returns the canonical degenerate cubic for a straight segment:
// both control points collapsed onto the endpoints.
func lineCubic(start, end PathOffset) CubicBezier {
	return CubicBezier{start, start, end, end}
}

// quadraticCubic elevates a quadratic curve to an exact cubic.
func quadraticCubic(start, control, end PathOffset) CubicBezier {
	return CubicBezier{
		start,
		blendPoints(start, control),
		blendPoints(end, control),
		end,
	}
}

// blendPoints moves a point two thirds of the way towards a quadratic
// control point, the standard degree-elevation rule.
func blendPoints(p1, p2 PathOffset) PathOffset {
	return PathOffset{(p1.Dx + 2*p2.Dx) / 3, (p1.Dy + 2*p2.Dy) / 3}
}

// quadraticControl recovers the quadratic control point from a
// degree-elevated cubic's first control point.
func quadraticControl(b CubicBezier) PathOffset {
	return PathOffset{(3*b.P1.Dx - b.P0.Dx) / 2, (3*b.P1.Dy - b.P0.Dy) / 2}
}

// PointAt evaluates the curve at parameter t.
func (b CubicBezier) PointAt(t float64) PathOffset {
	mt := 1 - t
	p := b.P0.Multiply(mt * mt * mt)
	p = p.Add(b.P1.Multiply(3 * mt * mt * t))
	p = p.Add(b.P2.Multiply(3 * mt * t * t))
	return p.Add(b.P3.Multiply(t * t * t))
}

// derivativeAt evaluates the curve's first derivative at parameter t.
func (b CubicBezier) derivativeAt(t float64) PathOffset {
	mt := 1 - t
	p := b.P1.Subtract(b.P0).Multiply(3 * mt * mt)
	p = p.Add(b.P2.Subtract(b.P1).Multiply(6 * mt * t))
	return p.Add(b.P3.Subtract(b.P2).Multiply(3 * t * t))
}

func (b CubicBezier) speedAt(t float64) float64 {
	d := b.derivativeAt(t)
	return math.Hypot(d.Dx, d.Dy)
}

// Length returns the arc length of the curve, integrated with Gauss-Legendre
// quadrature over [0,1].
func (b CubicBezier) Length() float64 {
	return gaussLegendre5(b.speedAt, 0, 1)
}

// Gauss-Legendre quadrature integration from a to b with n=5.
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.90618*c + d)
	Qd2 := f(-0.538469*c + d)
	Qd3 := f(d)
	Qd4 := f(0.538469*c + d)
	Qd5 := f(0.90618*c + d)
	return c * (0.236927*(Qd1+Qd5) + 0.478629*(Qd2+Qd4) + 0.568889*Qd3)
}

// BoundingBox returns the tight axis-aligned bounding box of the curve
// itself, found by evaluating the curve at the endpoints and at the
// derivative's roots inside (0,1).
func (b CubicBezier) BoundingBox() Rect {
	r := EmptyRect()
	r.ExpandToPoint(b.P0)
	r.ExpandToPoint(b.P3)

	expandExtrema := func(d0, d1, d2 float64) {
		// derivative of one coordinate: 3*(d0-2*d1+d2)*t^2 + 6*(d1-d0)*t + 3*d0
		for _, t := range solveQuadratic(3*(d0-2*d1+d2), 6*(d1-d0), 3*d0) {
			if t > 0 && t < 1 {
				r.ExpandToPoint(b.PointAt(t))
			}
		}
	}
	expandExtrema(b.P1.Dx-b.P0.Dx, b.P2.Dx-b.P1.Dx, b.P3.Dx-b.P2.Dx)
	expandExtrema(b.P1.Dy-b.P0.Dy, b.P2.Dy-b.P1.Dy, b.P3.Dy-b.P2.Dy)
	return r
}

// solveQuadratic returns the real roots of a x^2 + b x + c, degenerating to
// the linear solution when a is zero.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

// Subsegment extracts the curve restricted to [t0, t1] as a new cubic with
// matching endpoint tangents.
func (b CubicBezier) Subsegment(t0, t1 float64) CubicBezier {
	p0 := b.PointAt(t0)
	p3 := b.PointAt(t1)
	scale := (t1 - t0) / 3
	p1 := p0.Add(b.derivativeAt(t0).Multiply(scale))
	p2 := p3.Subtract(b.derivativeAt(t1).Multiply(scale))
	return CubicBezier{p0, p1, p2, p3}
}

// CurveProjection is the closest point on a curve to a query point.
type CurveProjection struct {
	Point    PathOffset
	T        float64
	Distance float64
}

const projectionSamples = 24

// Project finds the closest point on the curve to the target, by coarse
// uniform sampling followed by a ternary-search refinement around the best
// sample. Ties keep the earliest parameter.
func (b CubicBezier) Project(target PathOffset) CurveProjection {
	distSq := func(t float64) float64 {
		p := b.PointAt(t)
		dx := p.Dx - target.Dx
		dy := p.Dy - target.Dy
		return dx*dx + dy*dy
	}

	bestT := 0.0
	bestD := distSq(0)
	for i := 1; i <= projectionSamples; i++ {
		t := float64(i) / projectionSamples
		if d := distSq(t); d < bestD {
			bestD = d
			bestT = t
		}
	}

	lo := math.Max(0, bestT-1.0/projectionSamples)
	hi := math.Min(1, bestT+1.0/projectionSamples)
	for i := 0; i < 48; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if distSq(m1) <= distSq(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	t := (lo + hi) / 2
	if d := distSq(t); d < bestD {
		bestD = d
		bestT = t
	}

	point := b.PointAt(bestT)
	return CurveProjection{Point: point, T: bestT, Distance: math.Sqrt(bestD)}
}
