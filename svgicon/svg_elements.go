package svgicon

import (
	"encoding/xml"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"a":        gF,
	"defs":     gF,
	"symbol":   gF,
	"metadata": gF,
	"path":     pathF,
	"desc":     gF,
	"title":    titleF,
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// parseBasicFloat parses a length, ignoring its unit
func parseBasicFloat(s string) (float64, error) {
	value := strings.TrimSpace(s)
	value = strings.TrimRight(value, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ%")
	return strconv.ParseFloat(value, 64)
}

// parseViewBox reads the four numbers of a viewBox attribute.
func parseViewBox(v string) (Bounds, bool) {
	fields := splitOnCommaOrSpace(v)
	if len(fields) != 4 {
		return Bounds{}, false
	}
	var vb [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Bounds{}, false
		}
		vb[i] = n
	}
	return Bounds{X: vb[0], Y: vb[1], W: vb[2], H: vb[3]}, true
}

// svgF records the viewport. The paths do not depend on it,
// so invalid values are only reported through the error mode.
func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			vb, ok := parseViewBox(attr.Value)
			if !ok {
				if err := c.report("Invalid viewBox "+strconv.Quote(attr.Value), zap.String("viewBox", attr.Value)); err != nil {
					return err
				}
				continue
			}
			c.icon.ViewBox = vb
		case "width": // invalid lengths are ignored
			width, _ = parseBasicFloat(attr.Value)
		case "height":
			height, _ = parseBasicFloat(attr.Value)
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the style

func pathF(c *iconCursor, attrs []xml.Attr) error {
	p := SvgPath{Style: c.resolvedStyle()}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "d":
			p.D = attr.Value
		case "id":
			p.ID = attr.Value
		}
	}
	c.icon.SVGPaths = append(c.icon.SVGPaths, p)
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
