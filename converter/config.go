package converter

import (
	"github.com/pkg/errors"

	"github.com/benoitkugler/svg2fti/svgpath"
)

// Options tunes the conversion of one document.
type Options struct {
	// NumSamples is the number of points used for each curved segment.
	NumSamples int
	// NearestColor replaces a color absent from the color map
	// by the closest entry, instead of failing.
	NearestColor bool
}

// Config describes one run: where to read and write, and how to convert.
type Config struct {
	SVG      string // source document
	Out      string // destination .fti file
	ColorMap string // JSON color map
	Options
}

// DefaultConfig returns the settings used when nothing else is asked for.
// SVG must still be provided.
func DefaultConfig() Config {
	return Config{
		Out:      "out.fti",
		ColorMap: "color_map.json",
		Options:  Options{NumSamples: svgpath.DefaultSamples},
	}
}

// Validate checks that `cfg` may be used by Run.
func (cfg Config) Validate() error {
	if cfg.SVG == "" {
		return errors.New("converter: missing source svg file")
	}
	if cfg.Out == "" {
		return errors.New("converter: missing output file")
	}
	if cfg.NumSamples < 2 {
		return errors.Wrapf(svgpath.ErrSampleCount, "converter: invalid sample count %d", cfg.NumSamples)
	}
	return nil
}

// InputError is returned when an input file is missing, unreadable
// or not well-formed.
type InputError struct {
	Path string // empty for a stream
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return "converter: invalid input: " + e.Err.Error()
	}
	return "converter: invalid input " + e.Path + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }
