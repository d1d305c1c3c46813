package svgpath

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSampleCount is returned when asking for fewer than two
// samples per curve: both ends of a curve are always sampled.
var ErrSampleCount = errors.New("svgpath: the number of samples must be at least 2")

// ParseError reports path data this package can't compile.
type ParseError struct {
	Offset  int  // byte offset in the path data
	Command byte // active command, 0 if none was read yet
	Reason  string
}

func (e *ParseError) Error() string {
	if e.Command == 0 {
		return fmt.Sprintf("svgpath: invalid path data at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("svgpath: invalid path data at offset %d (command %c): %s", e.Offset, e.Command, e.Reason)
}
