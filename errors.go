package highline

import (
	"errors"
	"fmt"
	"io"
)

// ErrInputClosed is returned when the input ends before a line could be
// read. It wraps io.EOF.
var ErrInputClosed = fmt.Errorf("highline: input closed: %w", io.EOF)

var errEmptyTag = errors.New("empty validation tag")

type tagError struct {
	tag    string
	reason any
}

func (e tagError) Error() string {
	return fmt.Sprintf("invalid validation tag %q: %v", e.tag, e.reason)
}
