// Package palette loads the mapping between the colors used in
// SVG documents and the entries of the SGI color palette,
// and resolves the color of each path against it.
package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB is a color with 8 bits per channel.
type RGB [3]uint8

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

// Entry is one color of the map.
type Entry struct {
	Token string // key in the color map, lower case
	Index int    // palette index written in the output
	RGB   RGB
}

// Error is returned when the color map is invalid,
// or when a color can't be resolved.
type Error struct {
	Token  string // the offending key or color, if any
	Reason string
}

func (e *Error) Error() string {
	if e.Token == "" {
		return "palette: " + e.Reason
	}
	return fmt.Sprintf("palette: color %q: %s", e.Token, e.Reason)
}

// Map resolves colors to palette entries.
// It is read only once loaded.
type Map struct {
	entries []Entry
	byToken map[string]int // index into entries
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Load reads the color map stored in the JSON file `path`.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading color map %s", path)
	}
	return m, nil
}

// Read parses a color map, which is a JSON object mapping tokens
// to [r, g, b] triples, with channels in [0, 255].
// The palette index of an entry is its key when the key is an integer,
// or its position in the object otherwise. Two entries sharing an index
// are an error.
func Read(r io.Reader) (*Map, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	m := &Map{byToken: make(map[string]int)}
	byIndex := make(map[int]string)
	for position := 0; dec.More(); position++ {
		tok, err := dec.Token()
		if err != nil {
			return nil, &Error{Reason: err.Error()}
		}
		key := normalizeToken(tok.(string)) // object keys are always strings
		var values []float64
		if err := dec.Decode(&values); err != nil {
			return nil, &Error{Token: key, Reason: "expected an [r, g, b] array: " + err.Error()}
		}
		rgb, err := toRGB(key, values)
		if err != nil {
			return nil, err
		}
		if _, dup := m.byToken[key]; dup {
			return nil, &Error{Token: key, Reason: "duplicate key"}
		}
		index, err := strconv.Atoi(key)
		if err != nil {
			index = position
		}
		if other, taken := byIndex[index]; taken {
			return nil, &Error{Token: key, Reason: fmt.Sprintf("palette index %d already used by %q", index, other)}
		}
		byIndex[index] = key
		m.byToken[key] = len(m.entries)
		m.entries = append(m.entries, Entry{Token: key, Index: index, RGB: rgb})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return m, nil
}

func expectDelim(dec *json.Decoder, delim json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return &Error{Reason: err.Error()}
	}
	if d, ok := tok.(json.Delim); !ok || d != delim {
		return &Error{Reason: fmt.Sprintf("expected %q, got %v", delim, tok)}
	}
	return nil
}

func toRGB(key string, values []float64) (RGB, error) {
	var out RGB
	if len(values) != 3 {
		return out, &Error{Token: key, Reason: fmt.Sprintf("expected 3 channels, got %d", len(values))}
	}
	for i, v := range values {
		if v != math.Trunc(v) || v < 0 || v > 255 {
			return out, &Error{Token: key, Reason: fmt.Sprintf("invalid channel value %v", v)}
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns the entries, in the order of the file.
func (m *Map) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Resolve returns the entry for `token`: the entry with this key if any,
// or the first entry with the same RGB value when `token` is a color.
func (m *Map) Resolve(token string) (Entry, error) {
	token = normalizeToken(token)
	if i, ok := m.byToken[token]; ok {
		return m.entries[i], nil
	}
	if rgb, ok := ParseColor(token); ok {
		for _, e := range m.entries {
			if e.RGB == rgb {
				return e, nil
			}
		}
	}
	return Entry{}, &Error{Token: token, Reason: "not found in the color map"}
}

// Nearest is like Resolve, but falls back to the perceptually closest
// entry (CIEDE2000 distance) when `token` is a color absent from the map.
func (m *Map) Nearest(token string) (Entry, error) {
	entry, err := m.Resolve(token)
	if err == nil {
		return entry, nil
	}
	rgb, ok := ParseColor(token)
	if !ok || len(m.entries) == 0 {
		return Entry{}, err
	}
	target := rgb.colorful()
	best, bestDist := 0, math.Inf(1)
	for i, e := range m.entries {
		if d := target.DistanceCIEDE2000(e.RGB.colorful()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return m.entries[best], nil
}
