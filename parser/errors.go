package parser

import (
	"errors"
	"fmt"
)

// Sentinel kinds for terminal parse failures. All of them abort the whole
// parse: no partial tree is returned and no output is written.
var (
	ErrBadFile          = errors.New("unreadable input or unsupported extension")
	ErrBadDepth         = errors.New("missing or non-numeric segment level")
	ErrDepthJump        = errors.New("illegal segment level jump")
	ErrBadContainerName = errors.New("malformed container name")
	ErrMissingSection   = errors.New("no recognized section")
)

// Error is a terminal parse failure with source context.
type Error struct {
	Section string
	Row     int
	RawName string
	Err     error
}

func (e *Error) Error() string {
	if e.RawName != "" {
		return fmt.Sprintf("section %q row %d (%s): %v", e.Section, e.Row, e.RawName, e.Err)
	}
	return fmt.Sprintf("section %q row %d: %v", e.Section, e.Row, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func rowError(section string, row int, rawName string, err error) *Error {
	return &Error{Section: section, Row: row, RawName: rawName, Err: err}
}
