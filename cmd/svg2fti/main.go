// The svg2fti command converts the paths of an SVG document into an
// SGI IconSmith icon (.fti).
//
// Curves are approximated by polylines, and the whole drawing is scaled
// to the 100x100 icon canvas. Path colors are looked up in a JSON color
// map, such as
//
//	{"red": [255, 0, 0], "9": [0, 0, 255]}
//
// Example usage:
//
//	svg2fti --svg logo.svg --out logo.fti --num_samples 20
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/benoitkugler/svg2fti/converter"
)

const usage = `Usage: svg2fti --svg FILE [flags]

Flags:
`

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		config.Level.SetLevel(zap.DebugLevel)
	}
	config.DisableStacktrace = true
	return config.Build()
}

func main() {
	cfg := converter.DefaultConfig()
	flag.StringVar(&cfg.SVG, "svg", "", "source SVG file (required)")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "destination FTI file")
	flag.IntVar(&cfg.NumSamples, "num_samples", cfg.NumSamples, "number of points for each curved segment")
	flag.StringVar(&cfg.ColorMap, "color_map", cfg.ColorMap, "JSON file mapping colors to palette entries")
	flag.BoolVar(&cfg.NearestColor, "nearest_color", false, "use the closest palette entry for colors absent from the color map")
	verbose := flag.Bool("v", false, "log every sampled path")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := converter.Run(cfg, logger); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
