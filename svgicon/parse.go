package svgicon

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon        *SvgIcon
	styleStack  []PathStyle
	inTitleText bool
	errorMode   ErrorMode
	logger      *zap.Logger
}

// readStyleAttr updates `curStyle` with the property `k`,
// other properties are ignored.
func readStyleAttr(curStyle *PathStyle, k, v string) {
	if v == "inherit" {
		// already copied from the parent
		return
	}
	switch k {
	case "fill":
		curStyle.Fill = v
	case "stroke":
		curStyle.Stroke = v
	case "color":
		curStyle.Color = v
	}
}

// pushStyle parses the style of an element, and push it on the style stack.
// Only colors are supported. Note that this parses both the contents of a style attribute plus
// direct fill, stroke and color attributes, the style attribute taking precedence.
func (c *iconCursor) pushStyle(attrs []xml.Attr) {
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	var declarations []string
	for _, attr := range attrs {
		k := strings.ToLower(attr.Name.Local)
		if k == "style" {
			declarations = append(declarations, strings.Split(attr.Value, ";")...)
			continue
		}
		readStyleAttr(&curStyle, k, strings.TrimSpace(attr.Value))
	}
	for _, pair := range declarations {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			k := strings.ToLower(strings.TrimSpace(kv[0]))
			v := strings.TrimSpace(kv[1])
			v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
			readStyleAttr(&curStyle, k, v)
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
}

// resolvedStyle returns the top style, with currentColor substituted
func (c *iconCursor) resolvedStyle() PathStyle {
	style := c.styleStack[len(c.styleStack)-1]
	if strings.EqualFold(style.Fill, "currentColor") {
		style.Fill = style.Color
	}
	if strings.EqualFold(style.Stroke, "currentColor") {
		style.Stroke = style.Color
	}
	return style
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	if se.Name.Space != "" && se.Name.Space != SVGNamespace {
		// foreign content, such as editor metadata
		return nil
	}
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.report("Cannot process svg element "+se.Name.Local, zap.String("element", se.Name.Local))
	}
	return df(c, se.Attr)
}

// report handles content which is not understood but does not
// prevent reading the paths, according to the error mode.
func (c *iconCursor) report(msg string, fields ...zap.Field) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(msg)
	case WarnErrorMode:
		c.logger.Warn(msg, fields...)
	}
	return nil
}
