// Package fti implements the SGI IconSmith icon description format:
// polygons drawn on a 100x100 canvas, with the origin at the bottom left.
//
// Sampled SVG paths are first rescaled to the canvas by Normalize,
// then serialized by a Writer.
package fti

import (
	"strconv"

	"github.com/benoitkugler/svg2fti/svgpath"
)

// CanvasSize is the width and the height of the canvas.
const CanvasSize = 100.

// Paint is the argument of a color directive:
// a palette index or one of the colors reserved by the icon format.
type Paint string

// Colors reserved by the icon format, chosen by the desktop at display time.
const (
	IconColor    Paint = "iconcolor"
	OutlineColor Paint = "outlinecolor"
)

// Index returns the Paint for the palette entry `i`.
func Index(i int) Paint { return Paint(strconv.Itoa(i)) }

// Path is one polygon of the icon.
type Path struct {
	Points svgpath.Points

	// Filled polygons are painted with Color. Otherwise,
	// only the outline is drawn, with Color.
	Filled bool
	Color  Paint
}

func (p Path) begin() string {
	if p.Filled {
		return "color(" + string(p.Color) + ");\nbgnpolygon();\n"
	}
	return "bgnoutlinepolygon();\n"
}

func (p Path) end() string {
	if p.Filled {
		return "endpolygon();\n"
	}
	return "endoutlinepolygon(" + string(p.Color) + ");\n"
}
