// Implements an abstract representation of
// svg path data, compiled to absolute coordinates,
// which can then be sampled into polylines.
package svgpath

import (
	"fmt"
	"strings"
)

// Operation groups the different SVG commands, once
// relative coordinates and smooth control points are resolved.
type Operation interface {
	// endPoint returns the current point after the operation,
	// given the current point before it
	endPoint(current Point) Point
}

type MoveTo Point

type LineTo Point

// QuadTo holds the control point then the end point.
type QuadTo [2]Point

// CubicTo holds the two control points then the end point.
type CubicTo [3]Point

// ArcTo is an elliptical arc in endpoint parametrization.
type ArcTo struct {
	Radii    Point   // rx, ry
	Rotation float64 // x axis rotation, in degrees
	LargeArc bool
	Sweep    bool
	End      Point
}

type Close struct{}

func (op MoveTo) endPoint(Point) Point  { return Point(op) }
func (op LineTo) endPoint(Point) Point  { return Point(op) }
func (op QuadTo) endPoint(Point) Point  { return op[1] }
func (op CubicTo) endPoint(Point) Point { return op[2] }
func (op ArcTo) endPoint(Point) Point   { return op.End }

// Close returns to the subpath start, which is tracked by the sampler.
func (Close) endPoint(current Point) Point { return current }

// Path describes a sequence of basic SVG operations,
// in absolute coordinates.
type Path []Operation

// ToSVGPath returns a string representation of the path,
// using only absolute commands.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", op[0].X, op[0].Y,
				op[1].X, op[1].Y, op[2].X, op[2].Y)
		case ArcTo:
			chunks[i] = fmt.Sprintf("A%4.3f,%4.3f,%4.3f,%d,%d,%4.3f,%4.3f", op.Radii.X, op.Radii.Y,
				op.Rotation, boolToFlag(op.LargeArc), boolToFlag(op.Sweep), op.End.X, op.End.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Start starts a new subpath at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current subpath.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Arc adds an elliptical arc to the current subpath.
func (p *Path) Arc(radii Point, rotation float64, largeArc, sweep bool, end Point) {
	*p = append(*p, ArcTo{Radii: radii, Rotation: rotation, LargeArc: largeArc, Sweep: sweep, End: end})
}

// Stop joins the ends of the subpath
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
