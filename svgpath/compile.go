package svgpath

import (
	"math"
	"strconv"
)

// number of arguments expected by each command
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// pathCursor is used while compiling path data
type pathCursor struct {
	data string
	pos  int

	points []float64 // arguments of the command being read
	path   Path

	current, subStart Point
	ctrl              Point // last control point, reflected by S and T
	lastKey           byte  // upper case key of the previous segment
}

// Compile parses the path data `d` (the content of the `d` attribute)
// and returns the equivalent sequence of operations, in absolute coordinates.
// An empty string returns an empty path.
func Compile(d string) (Path, error) {
	c := &pathCursor{data: d}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c.path, nil
}

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isNumberStart(b byte) bool {
	return isDigit(b) || b == '.' || b == '-' || b == '+'
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

func (c *pathCursor) errorf(key byte, reason string) *ParseError {
	return &ParseError{Offset: c.pos, Command: key, Reason: reason}
}

func (c *pathCursor) skipSeparators() {
	for c.pos < len(c.data) && isSeparator(c.data[c.pos]) {
		c.pos++
	}
}

func (c *pathCursor) compile() error {
	var key byte
	for {
		c.skipSeparators()
		if c.pos >= len(c.data) {
			return nil
		}
		ch := c.data[c.pos]
		switch {
		case isLetter(ch):
			if _, ok := argCounts[toUpper(ch)]; !ok {
				return c.errorf(key, "unsupported command "+strconv.QuoteRune(rune(ch)))
			}
			key = ch
			c.pos++
			if toUpper(key) == 'Z' {
				c.addSegment(key)
				continue
			}
		case isNumberStart(ch):
			if key == 0 {
				return c.errorf(key, "path data must start with a command")
			}
			if toUpper(key) == 'Z' {
				return c.errorf(key, "unexpected number after closepath")
			}
			// implicit repetition of the previous command
		default:
			return c.errorf(key, "unexpected character "+strconv.QuoteRune(rune(ch)))
		}

		if err := c.readArgs(key); err != nil {
			return err
		}
		c.addSegment(key)

		// extra coordinates after a moveto are linetos
		switch key {
		case 'M':
			key = 'L'
		case 'm':
			key = 'l'
		}
	}
}

// readArgs fills c.points with the arguments of one `key` segment
func (c *pathCursor) readArgs(key byte) error {
	upper := toUpper(key)
	c.points = c.points[:0]
	for i := 0; i < argCounts[upper]; i++ {
		c.skipSeparators()
		if upper == 'A' && (i == 3 || i == 4) {
			flag, err := c.readFlag(key)
			if err != nil {
				return err
			}
			c.points = append(c.points, flag)
			continue
		}
		f, err := c.readNumber(key)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
	}
	return nil
}

// readNumber scans one number, as defined by the SVG path grammar:
// a leading sign, an optional fraction and an optional exponent.
// A second dot or a sign ends the number, so that "1.5.5" and "1-2"
// are read as two numbers.
func (c *pathCursor) readNumber(key byte) (float64, error) {
	start := c.pos
	i := c.pos
	if i < len(c.data) && (c.data[i] == '-' || c.data[i] == '+') {
		i++
	}
	digits := 0
	for i < len(c.data) && isDigit(c.data[i]) {
		i++
		digits++
	}
	if i < len(c.data) && c.data[i] == '.' {
		i++
		for i < len(c.data) && isDigit(c.data[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		if c.pos >= len(c.data) {
			return 0, c.errorf(key, "missing argument")
		}
		return 0, c.errorf(key, "expected a number")
	}
	if i < len(c.data) && (c.data[i] == 'e' || c.data[i] == 'E') {
		j := i + 1
		if j < len(c.data) && (c.data[j] == '-' || c.data[j] == '+') {
			j++
		}
		if j < len(c.data) && isDigit(c.data[j]) {
			for j < len(c.data) && isDigit(c.data[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(c.data[start:i], 64)
	if err != nil {
		return 0, c.errorf(key, "invalid number "+strconv.Quote(c.data[start:i]))
	}
	c.pos = i
	return f, nil
}

// readFlag scans an arc flag, which is always a single 0 or 1,
// possibly not followed by a separator.
func (c *pathCursor) readFlag(key byte) (float64, error) {
	if c.pos >= len(c.data) {
		return 0, c.errorf(key, "missing arc flag")
	}
	switch c.data[c.pos] {
	case '0':
		c.pos++
		return 0, nil
	case '1':
		c.pos++
		return 1, nil
	}
	return 0, c.errorf(key, "arc flag must be 0 or 1")
}

// pointAt reads the point stored at index `i` in c.points,
// resolving it against the current point for relative commands.
func (c *pathCursor) pointAt(i int, relative bool) Point {
	p := Pt(c.points[i], c.points[i+1])
	if relative {
		p = p.Add(c.current)
	}
	return p
}

// addSegment appends the operation described by `key` and c.points,
// and updates the current point.
func (c *pathCursor) addSegment(key byte) {
	relative := key != toUpper(key)
	upper := toUpper(key)
	switch upper {
	case 'M':
		p := c.pointAt(0, relative)
		c.path.Start(p)
		c.current, c.subStart = p, p
	case 'L':
		p := c.pointAt(0, relative)
		c.path.Line(p)
		c.current = p
	case 'H':
		x := c.points[0]
		if relative {
			x += c.current.X
		}
		c.current = Pt(x, c.current.Y)
		c.path.Line(c.current)
	case 'V':
		y := c.points[0]
		if relative {
			y += c.current.Y
		}
		c.current = Pt(c.current.X, y)
		c.path.Line(c.current)
	case 'C':
		c1, c2, end := c.pointAt(0, relative), c.pointAt(2, relative), c.pointAt(4, relative)
		c.path.CubeBezier(c1, c2, end)
		c.ctrl, c.current = c2, end
	case 'S':
		c1 := c.current
		if c.lastKey == 'C' || c.lastKey == 'S' {
			c1 = c.ctrl.reflect(c.current)
		}
		c2, end := c.pointAt(0, relative), c.pointAt(2, relative)
		c.path.CubeBezier(c1, c2, end)
		c.ctrl, c.current = c2, end
	case 'Q':
		q, end := c.pointAt(0, relative), c.pointAt(2, relative)
		c.path.QuadBezier(q, end)
		c.ctrl, c.current = q, end
	case 'T':
		q := c.current
		if c.lastKey == 'Q' || c.lastKey == 'T' {
			q = c.ctrl.reflect(c.current)
		}
		end := c.pointAt(0, relative)
		c.path.QuadBezier(q, end)
		c.ctrl, c.current = q, end
	case 'A':
		radii := Pt(math.Abs(c.points[0]), math.Abs(c.points[1]))
		end := c.pointAt(5, relative)
		c.path.Arc(radii, c.points[2], c.points[3] != 0, c.points[4] != 0, end)
		c.current = end
	case 'Z':
		c.path.Stop(true)
		c.current = c.subStart
	}
	c.lastKey = upper
}
