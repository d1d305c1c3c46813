package converter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benoitkugler/svg2fti/fti"
	"github.com/benoitkugler/svg2fti/palette"
	"github.com/benoitkugler/svg2fti/svgpath"
)

const shapes = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
  <g fill="red" stroke="black">
    <path id="square" d="M10 10 H60 V60 H10 Z"/>
    <path id="wave" style="fill:none;stroke:#0000ff" d="M70 50 C80 10 110 10 120 50 S160 90 170 50"/>
  </g>
  <path id="arc" fill="#00ff00" d="M150 80 a20 20 0 0 1 40 0"/>
  <path id="outline" fill="none" d="M0 0 L200 0"/>
</svg>`

const colorMap = `{"red": [255, 0, 0], "black": [0, 0, 0], "blue": [0, 0, 255], "green": [0, 255, 0]}`

func svgDoc(paths string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg">` + paths + `</svg>`
}

func mustPalette(t *testing.T, s string) *palette.Map {
	t.Helper()
	pal, err := palette.Read(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return pal
}

func defaultOptions() Options { return DefaultConfig().Options }

func TestConvertRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	err := Convert(strings.NewReader(svgDoc(`<path d="M0,0 L50,100"/>`)), &out,
		mustPalette(t, colorMap), defaultOptions(), zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	want := `#Path 0
color(iconcolor);
bgnpolygon();
vertex(0.000000,100.000000);
vertex(50.000000,0.000000);
endpolygon();
`
	if got := out.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}

	if n := logs.FilterMessage("sampled path").Len(); n != 1 {
		t.Errorf("expected one debug entry per path, got %d", n)
	}
	summary := logs.FilterMessage("scale adjustment").All()
	if len(summary) != 1 || summary[0].ContextMap()["scale"] != 1. {
		t.Errorf("unexpected scale summary %v", summary)
	}
}

func TestConvertIgnoresViewBox(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	var out bytes.Buffer
	err := Convert(strings.NewReader(`<svg viewBox="0 0 100"><path d="M0 0 L50 100"/></svg>`), &out,
		mustPalette(t, colorMap), defaultOptions(), zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "vertex(50.000000,0.000000);") {
		t.Errorf("unexpected output\n%s", out.String())
	}
	if logs.Len() != 1 {
		t.Errorf("expected a warning about the viewBox, got %v", logs.All())
	}
}

func TestConvertColors(t *testing.T) {
	var out bytes.Buffer
	err := Convert(strings.NewReader(shapes), &out, mustPalette(t, colorMap), defaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if n := strings.Count(got, "#Path "); n != 4 {
		t.Fatalf("expected 4 paths, got %d", n)
	}
	for _, directive := range []string{
		"#Path 0\ncolor(0);\nbgnpolygon();\n",
		"#Path 1\nbgnoutlinepolygon();\n",
		"endoutlinepolygon(2);\n#Path 2\ncolor(3);\nbgnpolygon();\n",
		"#Path 3\nbgnoutlinepolygon();\n",
		"endoutlinepolygon(outlinecolor);\n",
	} {
		if !strings.Contains(got, directive) {
			t.Errorf("missing %q in\n%s", directive, got)
		}
	}
	// the widest coordinate is 200
	if !strings.Contains(got, "vertex(100.000000,100.000000);") {
		t.Errorf("expected the outline to reach the canvas corner:\n%s", got)
	}
}

func TestConvertMissingColor(t *testing.T) {
	pal := mustPalette(t, `{"red": [255,0,0]}`)
	doc := svgDoc(`<path fill="red" d="M0 0 L10 10"/><path fill="green" d="M0 0 L10 20"/>`)

	var out bytes.Buffer
	err := Convert(strings.NewReader(doc), &out, pal, defaultOptions(), nil)
	var perr *palette.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *palette.Error, got %v", err)
	}
	if perr.Token != "green" {
		t.Errorf("unexpected token %q", perr.Token)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on error, got %q", out.String())
	}
}

func TestConvertNearestColor(t *testing.T) {
	pal := mustPalette(t, `{"black": [0,0,0], "red": [255,0,0]}`)
	doc := svgDoc(`<path fill="#ee1111" d="M0 0 L10 10"/>`)

	var out bytes.Buffer
	if err := Convert(strings.NewReader(doc), &out, pal, defaultOptions(), nil); err == nil {
		t.Fatal("expected an error without nearest color")
	}

	opts := defaultOptions()
	opts.NearestColor = true
	out.Reset()
	if err := Convert(strings.NewReader(doc), &out, pal, opts, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "color(1);") {
		t.Errorf("expected the red entry, got\n%s", out.String())
	}
}

func TestConvertDegenerate(t *testing.T) {
	for _, doc := range []string{
		svgDoc(`<path d="M0,0 L0,0"/>`),
		svgDoc(`<path d="M5,5"/>`),
		svgDoc(``),
	} {
		var out bytes.Buffer
		err := Convert(strings.NewReader(doc), &out, mustPalette(t, colorMap), defaultOptions(), nil)
		var derr *fti.DegenerateGeometryError
		if !errors.As(err, &derr) {
			t.Errorf("%s: expected a *fti.DegenerateGeometryError, got %v", doc, err)
		}
		if out.Len() != 0 {
			t.Errorf("nothing should be written on error, got %q", out.String())
		}
	}
}

func TestConvertInvalidInput(t *testing.T) {
	pal := mustPalette(t, colorMap)
	var out bytes.Buffer

	err := Convert(strings.NewReader("<svg><path d='M0 0'"), &out, pal, defaultOptions(), nil)
	var ierr *InputError
	if !errors.As(err, &ierr) {
		t.Errorf("expected an *InputError, got %v", err)
	}

	err = Convert(strings.NewReader(svgDoc(`<path id="bad" d="M0 0 L5 5 B1 1"/>`)), &out, pal, defaultOptions(), nil)
	var perr *svgpath.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *svgpath.ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("expected the path id in %q", err)
	}

	err = Convert(strings.NewReader(svgDoc(`<path d="M0 0 L5 5"/>`)), &out, pal, Options{NumSamples: 1}, nil)
	if !errors.Is(err, svgpath.ErrSampleCount) {
		t.Errorf("expected ErrSampleCount, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.SVG = "icon.svg"
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}

	noSVG := valid
	noSVG.SVG = ""
	noOut := valid
	noOut.Out = ""
	noSamples := valid
	noSamples.NumSamples = 0
	for _, cfg := range []Config{noSVG, noOut, noSamples} {
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected an error for %+v", cfg)
		}
	}
	if err := noSamples.Validate(); !errors.Is(err, svgpath.ErrSampleCount) {
		t.Errorf("expected ErrSampleCount, got %v", err)
	}
}

// writeInputs creates the source document and the color map in a
// temporary directory, and returns a configuration using them.
func writeInputs(t *testing.T, doc, colors string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.SVG = filepath.Join(dir, "icon.svg")
	cfg.ColorMap = filepath.Join(dir, "color_map.json")
	cfg.Out = filepath.Join(dir, "icon.fti")
	if err := os.WriteFile(cfg.SVG, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.ColorMap, []byte(colors), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRun(t *testing.T) {
	cfg := writeInputs(t, shapes, colorMap)
	if err := os.WriteFile(cfg.Out, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	if err := Run(cfg, zap.New(core)); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(cfg.Out)
	if err != nil {
		t.Fatal(err)
	}

	var want bytes.Buffer
	if err := Convert(strings.NewReader(shapes), &want, mustPalette(t, colorMap), cfg.Options, nil); err != nil {
		t.Fatal(err)
	}
	if string(got) != want.String() {
		t.Errorf("expected\n%s\ngot\n%s", want.String(), got)
	}
	if logs.FilterMessage("wrote fti").Len() != 1 {
		t.Errorf("missing final log entry, got %v", logs.All())
	}
	assertFiles(t, filepath.Dir(cfg.Out), "color_map.json", "icon.fti", "icon.svg")
}

func TestRunNoPartialOutput(t *testing.T) {
	doc := svgDoc(`<path fill="red" d="M0 0 L10 10"/><path fill="green" d="M0 0 L10 20"/>`)

	cfg := writeInputs(t, doc, `{"red": [255,0,0]}`)
	if err := Run(cfg, nil); err == nil {
		t.Fatal("expected an error for a missing color")
	}
	assertFiles(t, filepath.Dir(cfg.Out), "color_map.json", "icon.svg")

	// an existing output is left untouched
	cfg = writeInputs(t, svgDoc(`<path d="M0,0 L0,0"/>`), colorMap)
	if err := os.WriteFile(cfg.Out, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run(cfg, nil); err == nil {
		t.Fatal("expected an error for a degenerate drawing")
	}
	if b, _ := os.ReadFile(cfg.Out); string(b) != "previous" {
		t.Errorf("output modified on error: %q", b)
	}
	assertFiles(t, filepath.Dir(cfg.Out), "color_map.json", "icon.fti", "icon.svg")
}

func TestRunInvalidInputs(t *testing.T) {
	cfg := writeInputs(t, shapes, colorMap)
	cfg.SVG += ".missing"
	err := Run(cfg, nil)
	var ierr *InputError
	if !errors.As(err, &ierr) || ierr.Path != cfg.SVG {
		t.Errorf("expected an *InputError for the document, got %v", err)
	}

	cfg = writeInputs(t, shapes, colorMap)
	cfg.ColorMap += ".missing"
	err = Run(cfg, nil)
	if !errors.As(err, &ierr) || ierr.Path != cfg.ColorMap || !os.IsNotExist(ierr.Err) {
		t.Errorf("expected an *InputError for the color map, got %v", err)
	}

	cfg = writeInputs(t, shapes, `{"red": [255, 0]}`)
	err = Run(cfg, nil)
	var perr *palette.Error
	if !errors.As(err, &perr) {
		t.Errorf("expected a *palette.Error, got %v", err)
	}

	cfg = writeInputs(t, "not xml <", colorMap)
	if err = Run(cfg, nil); !errors.As(err, &ierr) {
		t.Errorf("expected an *InputError, got %v", err)
	}

	if err = Run(Config{}, nil); err == nil {
		t.Error("expected an error for an empty configuration")
	}
}

func assertFiles(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expected files %v, got %v", want, got)
	}
}
