// Provides parsing of SVG documents into the list
// of their path elements, in document order, along with
// the colors they inherit.
// Only the path data and the fill and stroke colors are retained:
// the geometry is compiled later by the svgpath package.
package svgicon

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// SVGNamespace is the namespace of SVG elements.
// Elements of other namespaces (such as editor metadata) are skipped.
const SVGNamespace = "http://www.w3.org/2000/svg"

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning about unparsed SVG elements
	WarnErrorMode
	// StrictErrorMode causes an error when an unparsed SVG element is found
	StrictErrorMode
)

// PathStyle holds the colors of a path, as written in the document.
// An empty string means the property is not set.
type PathStyle struct {
	Fill, Stroke string
	Color        string // value of `currentColor`
}

// SvgPath binds a style to the path data of one <path> element.
type SvgPath struct {
	ID    string
	D     string // raw path data
	Style PathStyle
}

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds data from parsed SVGs.
type SvgIcon struct {
	// ViewBox is informative: path coordinates are not mapped to it.
	// It falls back to the width and height attributes, and is empty
	// when none of them is valid.
	ViewBox  Bounds
	Titles   []string // Title elements collect here
	SVGPaths []SvgPath
}

// ReadIconStream reads the Icon from the given io.Reader.
// errMode determines if the reader ignores, errors out, or logs a warning
// on `logger` if it does not handle an element found in the icon file.
// A nil logger disables the warnings.
func ReadIconStream(stream io.Reader, errMode ErrorMode, logger *zap.Logger) (*SvgIcon, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	icon := &SvgIcon{}
	cursor := &iconCursor{styleStack: []PathStyle{{}}, icon: icon, errorMode: errMode, logger: logger}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return nil, errors.Wrap(err, "invalid svg xml icon")
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			cursor.pushStyle(se.Attr)
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			if se.Name.Local == "title" {
				cursor.inTitleText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the Icon from the named file.
// See ReadIconStream for the meaning of `errMode` and `logger`.
func ReadIcon(iconFile string, errMode ErrorMode, logger *zap.Logger) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode, logger)
}
