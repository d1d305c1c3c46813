package fti

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Scale describes the adjustment applied by Normalize.
type Scale struct {
	MaxReal  float64 // largest X
	MaxImag  float64 // largest Y
	MaxFinal float64 // max(MaxReal, MaxImag)
	Factor   float64 // CanvasSize / MaxFinal
}

// DegenerateGeometryError is returned by Normalize when no point has a
// positive coordinate, or when scaling to the canvas would overflow.
type DegenerateGeometryError struct {
	Scale Scale
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("fti: degenerate geometry: the largest coordinate is %v, can't scale to the canvas (factor %v)",
		e.Scale.MaxFinal, e.Scale.Factor)
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

// Normalize rescales every path in place so that the union of their points
// fits the canvas: the same factor is used for every point of every path,
// chosen so that the largest coordinate, on either axis, becomes CanvasSize.
// No translation is applied: negative coordinates stay negative.
//
// The paths are not modified when an error is returned.
// A nil logger disables the diagnostic.
func Normalize(paths []Path, logger *zap.Logger) (Scale, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var s Scale
	for _, p := range paths {
		x, y := p.Points.Max()
		s.MaxReal = math.Max(s.MaxReal, x)
		s.MaxImag = math.Max(s.MaxImag, y)
	}
	s.MaxFinal = math.Max(s.MaxReal, s.MaxImag)
	if !(s.MaxFinal > 0) || math.IsInf(s.MaxFinal, 1) {
		return s, &DegenerateGeometryError{Scale: s}
	}
	s.Factor = CanvasSize / s.MaxFinal
	if !isFinite(s.Factor) {
		return s, &DegenerateGeometryError{Scale: s}
	}
	// negative coordinates are not bounded by MaxFinal
	for _, p := range paths {
		for _, v := range p.Points {
			if !isFinite(v.X*s.Factor) || !isFinite(v.Y*s.Factor) {
				return s, &DegenerateGeometryError{Scale: s}
			}
		}
	}

	logger.Info("scale adjustment",
		zap.Float64("max_real", s.MaxReal),
		zap.Float64("max_imag", s.MaxImag),
		zap.Float64("max_final", s.MaxFinal),
		zap.Float64("scale", s.Factor))

	for _, p := range paths {
		p.Points.Scale(s.Factor)
	}
	return s, nil
}
