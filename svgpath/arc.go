package svgpath

import "math"

// ellipticArc is an arc in center parametrization:
// the point at time t has the ellipse parameter eta = start + t * delta.
type ellipticArc struct {
	cx, cy             float64
	rx, ry             float64
	sinTheta, cosTheta float64 // x axis rotation
	start, delta       float64
}

func (a ellipticArc) evaluateCurve(t float64) Point {
	x, y := ellipsePointAt(a.rx, a.ry, a.sinTheta, a.cosTheta, a.start+a.delta*t, a.cx, a.cy)
	return Pt(x, y)
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// vectorAngle returns the signed angle from u to v
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// centerArc converts the arc going from `from` to op.End to its
// center parametrization. Radii too small to join both points are scaled up,
// preserving their ratio. The boolean is false when the arc is degenerate
// and must be drawn as a straight line (a zero radius).
func centerArc(from Point, op ArcTo) (ellipticArc, bool) {
	rx, ry := math.Abs(op.Radii.X), math.Abs(op.Radii.Y)
	if rx == 0 || ry == 0 {
		return ellipticArc{}, false
	}
	rot := op.Rotation * math.Pi / 180
	sin, cos := math.Sin(rot), math.Cos(rot)

	// Move origin to the middle of the chord and rotate
	// the ellipse x-axis to the coordinate x-axis
	hx, hy := (from.X-op.End.X)/2, (from.Y-op.End.Y)/2
	x1, y1 := cos*hx+sin*hy, -sin*hx+cos*hy

	// Requested ellipse does not exist; scale rx, ry to fit.
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if op.LargeArc == op.Sweep {
		coef = -coef
	}
	cx1, cy1 := coef*rx*y1/ry, -coef*ry*x1/rx

	// Reverse rotate and translate back to original coordinates
	cx := cos*cx1 - sin*cy1 + (from.X+op.End.X)/2
	cy := sin*cx1 + cos*cy1 + (from.Y+op.End.Y)/2

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	start := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if op.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !op.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	return ellipticArc{
		cx: cx, cy: cy,
		rx: rx, ry: ry,
		sinTheta: sin, cosTheta: cos,
		start: start, delta: delta,
	}, true
}
