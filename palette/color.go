package palette

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor interprets an SVG color value: #rgb, #rrggbb,
// rgb(r, g, b) with integer or percentage channels, or a color keyword.
// It returns false for anything else, including "none" and url(...) paints.
func ParseColor(s string) (RGB, bool) {
	s = normalizeToken(s)
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 4 && len(s) != 7 {
			return RGB{}, false
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, false
		}
		r, g, b := c.RGB255()
		return RGB{r, g, b}, true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"))
	default:
		c, ok := colornames.Map[s]
		if !ok {
			return RGB{}, false
		}
		return RGB{c.R, c.G, c.B}, true
	}
}

func parseFunctional(args string) (RGB, bool) {
	var out RGB
	fields := strings.Split(args, ",")
	if len(fields) != 3 {
		return out, false
	}
	for i, f := range fields {
		f = strings.TrimSpace(f)
		percent := strings.HasSuffix(f, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
		if err != nil {
			return out, false
		}
		if percent {
			v = v * 255 / 100
		}
		// out of range values are clamped
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out[i] = uint8(v + 0.5)
	}
	return out, true
}
