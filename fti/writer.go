package fti

import (
	"bufio"
	"fmt"
	"io"
)

// Writer serializes paths, numbering them in the order
// they are written.
type Writer struct {
	w   *bufio.Writer
	n   int
	err error // first write error, sticky
}

// NewWriter returns a Writer writing to `w`. Flush must be
// called once all the paths are written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// WritePath writes one path: its number as a comment, then the polygon,
// with one vertex per point. The Y axis is reflected, since the canvas
// origin is at the bottom left.
func (w *Writer) WritePath(p Path) error {
	w.printf("#Path %d\n", w.n)
	w.printf("%s", p.begin())
	for _, v := range p.Points {
		w.printf("vertex(%f,%f);\n", v.X, CanvasSize-v.Y)
	}
	w.printf("%s", p.end())
	w.n++
	return w.err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Write serializes `paths` to `out`, in order.
func Write(out io.Writer, paths []Path) error {
	w := NewWriter(out)
	for _, p := range paths {
		if err := w.WritePath(p); err != nil {
			return err
		}
	}
	return w.Flush()
}
