package markdown

import (
	"errors"
	"fmt"
)

// Edit represents a targeted byte-range replacement.
//
// Start and End are byte offsets into the original source, with End exclusive.
// Replacement replaces source[Start:End]; everything outside the range is kept
// byte-for-byte.
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// ErrInvalidEdit is returned when an edit range does not fit the source.
var ErrInvalidEdit = errors.New("invalid edit")

// Apply applies e to source and returns the updated content. source is not modified.
func Apply(source []byte, e Edit) ([]byte, error) {
	if e.Start < 0 || e.End < 0 {
		return nil, fmt.Errorf("%w: negative range", ErrInvalidEdit)
	}
	if e.End < e.Start {
		return nil, fmt.Errorf("%w: end before start", ErrInvalidEdit)
	}
	if e.End > len(source) {
		return nil, fmt.Errorf("%w: range out of bounds", ErrInvalidEdit)
	}

	out := make([]byte, 0, len(source)-(e.End-e.Start)+len(e.Replacement))
	out = append(out, source[:e.Start]...)
	out = append(out, e.Replacement...)
	out = append(out, source[e.End:]...)
	return out, nil
}
