package svgpath

// parametric evaluation of the segments, for t in [0, 1]

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

type segment interface {
	// compute the point at time t
	evaluateCurve(t float64) Point
}

type quadBezier [3]Point

func (cu quadBezier) evaluateCurve(t float64) Point {
	return Pt(bezierQuad(cu[0].X, cu[1].X, cu[2].X, t), bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t))
}

type cubicBezier [4]Point

func (cu cubicBezier) evaluateCurve(t float64) Point {
	return Pt(bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t))
}

// sampleCurve evaluates `curve` at n evenly spaced times, 0 and 1 included.
// The ends are copied from start and end, avoiding roundoff errors.
func sampleCurve(curve segment, start, end Point, n int) []Point {
	out := make([]Point, n)
	out[0] = start
	for i := 1; i < n-1; i++ {
		out[i] = curve.evaluateCurve(float64(i) / float64(n-1))
	}
	out[n-1] = end
	return out
}
