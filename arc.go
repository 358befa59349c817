package pathmorphing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func mapPoint(transform mgl32.Mat4, point PathOffset) PathOffset {
	return PathOffset{
		float64(transform[0])*point.Dx + float64(transform[4])*point.Dy + float64(transform[12]),
		float64(transform[1])*point.Dx + float64(transform[5])*point.Dy + float64(transform[13]),
	}
}

// arcToCubicCurves converts the raw elliptical-arc arguments into a
// deterministic ordered list of cubic Bezier segments approximating the arc.
// Out-of-range radii are scaled up per the SVG arc rules. It returns nil for
// degenerate input (zero radius or coincident endpoints); callers are
// expected to handle those as lines or points before calling.
func arcToCubicCurves(x0, y0, rx, ry, rotationDegrees float64, largeArc, sweep bool, x1, y1 float64) []CubicBezier {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return nil
	}

	currentPoint := PathOffset{x0, y0}
	targetPoint := PathOffset{x1, y1}
	if targetPoint == currentPoint {
		return nil
	}

	angle := math.Pi * rotationDegrees / 180.0

	midPointDistance := currentPoint.Subtract(targetPoint).Multiply(0.5)

	pointTransform := mgl32.HomogRotate3DZ(float32(-angle))

	transformedMidPoint := mapPoint(pointTransform, midPointDistance)

	squareRx := rx * rx
	squareRy := ry * ry
	squareX := transformedMidPoint.Dx * transformedMidPoint.Dx
	squareY := transformedMidPoint.Dy * transformedMidPoint.Dy

	radiiScale := squareX/squareRx + squareY/squareRy
	if radiiScale > 1.0 {
		rx *= math.Sqrt(radiiScale)
		ry *= math.Sqrt(radiiScale)
	}

	pointTransform = mgl32.Scale3D(float32(1.0/rx), float32(1.0/ry), float32(1.0/rx)).Mul4(mgl32.HomogRotate3DZ(float32(-angle)))

	point1 := mapPoint(pointTransform, currentPoint)
	point2 := mapPoint(pointTransform, targetPoint)
	delta := point2.Subtract(point1)

	d := delta.Dx*delta.Dx + delta.Dy*delta.Dy
	scaleFactorSquared := math.Max(1.0/d-0.25, 0.0)
	scaleFactor := math.Sqrt(scaleFactorSquared)
	if !isFinite(scaleFactor) {
		scaleFactor = 0.0
	}

	if sweep == largeArc {
		scaleFactor = -scaleFactor
	}

	delta = delta.Multiply(scaleFactor)
	centerPoint := point1.Add(point2).Multiply(0.5).Translate(-delta.Dy, delta.Dx)

	theta1 := point1.Subtract(centerPoint).Direction()
	theta2 := point2.Subtract(centerPoint).Direction()

	thetaArc := theta2 - theta1

	if thetaArc < 0.0 && sweep {
		thetaArc += 2 * math.Pi
	} else if thetaArc > 0.0 && !sweep {
		thetaArc -= 2 * math.Pi
	}

	pointTransform = mgl32.HomogRotate3DZ(float32(angle)).Mul4(mgl32.Scale3D(float32(rx), float32(ry), float32(rx)))

	segments := int(math.Ceil(math.Abs(thetaArc) / (math.Pi/2 + 0.001)))
	curves := make([]CubicBezier, 0, segments)
	start := currentPoint
	for i := 0; i < segments; i++ {
		startTheta := theta1 + float64(i)*thetaArc/float64(segments)
		endTheta := theta1 + float64(i+1)*thetaArc/float64(segments)

		t := (8.0 / 6.0) * math.Tan(0.25*(endTheta-startTheta))
		if !isFinite(t) {
			return nil
		}
		sinStartTheta := math.Sin(startTheta)
		cosStartTheta := math.Cos(startTheta)
		sinEndTheta := math.Sin(endTheta)
		cosEndTheta := math.Cos(endTheta)

		control1 := PathOffset{cosStartTheta - t*sinStartTheta, sinStartTheta + t*cosStartTheta}.Translate(centerPoint.Dx, centerPoint.Dy)
		end := PathOffset{cosEndTheta, sinEndTheta}.Translate(centerPoint.Dx, centerPoint.Dy)
		control2 := end.Translate(t*sinEndTheta, -t*cosEndTheta)

		curve := CubicBezier{
			P0: start,
			P1: mapPoint(pointTransform, control1),
			P2: mapPoint(pointTransform, control2),
			P3: mapPoint(pointTransform, end),
		}
		curves = append(curves, curve)
		start = curve.P3
	}
	return curves
}
