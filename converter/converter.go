// Package converter drives the conversion of an SVG document into an
// FTI icon: every path is sampled, the drawing is scaled to the canvas,
// colors are looked up in the color map, and the result is written.
package converter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/benoitkugler/svg2fti/fti"
	"github.com/benoitkugler/svg2fti/palette"
	"github.com/benoitkugler/svg2fti/svgicon"
	"github.com/benoitkugler/svg2fti/svgpath"
)

// Run converts the file cfg.SVG into cfg.Out, using the color map cfg.ColorMap.
// The output file is only created (or replaced) when the whole conversion succeeds.
// A nil logger disables the diagnostics.
func Run(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pal, err := palette.Load(cfg.ColorMap)
	if err != nil {
		var perr *palette.Error
		if errors.As(err, &perr) {
			return err
		}
		return &InputError{Path: cfg.ColorMap, Err: err}
	}

	icon, err := svgicon.ReadIcon(cfg.SVG, svgicon.WarnErrorMode, logger)
	if err != nil {
		return &InputError{Path: cfg.SVG, Err: err}
	}

	paths, err := buildPaths(icon, pal, cfg.Options, logger)
	if err != nil {
		return pkgerrors.Wrapf(err, "converting %s", cfg.SVG)
	}

	err = writeFile(cfg.Out, func(w io.Writer) error { return fti.Write(w, paths) })
	if err != nil {
		return pkgerrors.Wrapf(err, "writing %s", cfg.Out)
	}
	logger.Info("wrote fti", zap.String("out", cfg.Out), zap.Int("paths", len(paths)))
	return nil
}

// Convert reads an SVG document from `r` and writes the FTI icon to `w`.
// Nothing is written to `w` until every path is converted.
func Convert(r io.Reader, w io.Writer, pal *palette.Map, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	icon, err := svgicon.ReadIconStream(r, svgicon.WarnErrorMode, logger)
	if err != nil {
		return &InputError{Err: err}
	}
	paths, err := buildPaths(icon, pal, opts, logger)
	if err != nil {
		return err
	}
	return fti.Write(w, paths)
}

// buildPaths samples every path of the icon, scales the drawing
// to the canvas, and resolves the colors.
func buildPaths(icon *svgicon.SvgIcon, pal *palette.Map, opts Options, logger *zap.Logger) ([]fti.Path, error) {
	sampler, err := svgpath.NewSampler(opts.NumSamples)
	if err != nil {
		return nil, err
	}

	logger.Debug("read svg", zap.Strings("titles", icon.Titles),
		zap.Float64s("view_box", []float64{icon.ViewBox.X, icon.ViewBox.Y, icon.ViewBox.W, icon.ViewBox.H}),
		zap.Int("paths", len(icon.SVGPaths)))

	paths := make([]fti.Path, len(icon.SVGPaths))
	for i, sp := range icon.SVGPaths {
		points, err := sampler.Sample(sp.D)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "path %d (id %q)", i, sp.ID)
		}
		paths[i].Points = points
		logger.Debug("sampled path", zap.Int("index", i), zap.String("id", sp.ID), zap.Int("points", len(points)))
	}

	if _, err = fti.Normalize(paths, logger); err != nil {
		return nil, err
	}

	resolve := pal.Resolve
	if opts.NearestColor {
		resolve = pal.Nearest
	}
	for i, sp := range icon.SVGPaths {
		paths[i].Filled, paths[i].Color, err = paint(sp.Style, resolve)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "path %d (id %q)", i, sp.ID)
		}
	}
	return paths, nil
}

func isNone(token string) bool { return strings.EqualFold(strings.TrimSpace(token), "none") }

// paint chooses how a path is drawn. Without fill, it is filled with the
// icon color. With fill="none", only its outline is drawn, with the stroke
// color, or the outline color when there is no stroke. Otherwise, it is
// filled with the palette entry of its fill.
func paint(style svgicon.PathStyle, resolve func(string) (palette.Entry, error)) (filled bool, color fti.Paint, err error) {
	switch {
	case strings.TrimSpace(style.Fill) == "":
		return true, fti.IconColor, nil
	case isNone(style.Fill):
		if strings.TrimSpace(style.Stroke) == "" || isNone(style.Stroke) {
			return false, fti.OutlineColor, nil
		}
		entry, err := resolve(style.Stroke)
		if err != nil {
			return false, "", err
		}
		return false, fti.Index(entry.Index), nil
	default:
		entry, err := resolve(style.Fill)
		if err != nil {
			return false, "", err
		}
		return true, fti.Index(entry.Index), nil
	}
}

// writeFile calls `write` on a temporary file next to `path`,
// then renames it to `path`. The temporary file is removed on failure.
func writeFile(path string, write func(w io.Writer) error) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".svg2fti-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if err := write(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
