package svgpath

import "math"

// Point is a position in the SVG user space. X grows to the right
// and Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// reflect returns the reflection of p about center,
// used by the smooth curve commands.
func (p Point) reflect(center Point) Point {
	return Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
}

// Points is the polyline approximation of one path.
type Points []Point

// Max returns the largest X and the largest Y found in ps,
// starting from 0 on both axes.
func (ps Points) Max() (maxX, maxY float64) {
	for _, p := range ps {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return maxX, maxY
}

// Scale multiplies every point by f, in place.
func (ps Points) Scale(f float64) {
	for i := range ps {
		ps[i] = ps[i].Mul(f)
	}
}

// appendJoined appends seg to ps, dropping the first point of seg
// when it is the point ps already ends with.
func (ps Points) appendJoined(seg ...Point) Points {
	if len(seg) == 0 {
		return ps
	}
	if len(ps) > 0 && ps[len(ps)-1] == seg[0] {
		seg = seg[1:]
	}
	return append(ps, seg...)
}
