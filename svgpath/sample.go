package svgpath

// DefaultSamples is the number of points used to approximate
// one curved segment when nothing else is asked for.
const DefaultSamples = 50

// Sampler converts path data to polylines.
// Straight segments contribute their two ends; curves (quadratic,
// cubic and elliptical arcs) are evaluated at NumSamples evenly
// spaced times, ends included.
type Sampler struct {
	NumSamples int
}

// NewSampler checks `numSamples` and returns a Sampler using it.
func NewSampler(numSamples int) (Sampler, error) {
	if numSamples < 2 {
		return Sampler{}, ErrSampleCount
	}
	return Sampler{NumSamples: numSamples}, nil
}

// Sample compiles the path data `d` and returns its polyline
// approximation. An empty path data returns no points and no error.
func (s Sampler) Sample(d string) (Points, error) {
	if s.NumSamples < 2 {
		return nil, ErrSampleCount
	}
	path, err := Compile(d)
	if err != nil {
		return nil, err
	}
	return s.SamplePath(path), nil
}

// SamplePath returns the polyline approximation of a compiled path.
// Points shared by two consecutive segments are only emitted once.
// The sample count must be valid, see NewSampler.
func (s Sampler) SamplePath(path Path) Points {
	var (
		out               Points
		current, subStart Point
	)
	for _, op := range path {
		switch op := op.(type) {
		case MoveTo:
			subStart = Point(op)
		case LineTo:
			out = out.appendJoined(current, Point(op))
		case QuadTo:
			curve := quadBezier{current, op[0], op[1]}
			out = out.appendJoined(sampleCurve(curve, current, op[1], s.NumSamples)...)
		case CubicTo:
			curve := cubicBezier{current, op[0], op[1], op[2]}
			out = out.appendJoined(sampleCurve(curve, current, op[2], s.NumSamples)...)
		case ArcTo:
			if current == op.End { // an arc to the current point is omitted
				break
			}
			arc, ok := centerArc(current, op)
			if !ok {
				out = out.appendJoined(current, op.End)
				break
			}
			out = out.appendJoined(sampleCurve(arc, current, op.End, s.NumSamples)...)
		case Close:
			if current != subStart {
				out = out.appendJoined(current, subStart)
			}
			current = subStart
			continue
		}
		current = op.endPoint(current)
	}
	return out
}
