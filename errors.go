package pycheat

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSheet reports a sheet name outside the known set.
	ErrUnknownSheet = errors.New("unknown sheet")
	// ErrInvalidSectionIndex reports a section selector that is not a positive integer.
	ErrInvalidSectionIndex = errors.New("invalid section index")
	// ErrSectionOutOfRange reports a section number of zero or past the last section.
	ErrSectionOutOfRange = errors.New("section index out of range")
)

// Error is returned by Viewer lookups. Kind is one of the sentinels above and
// is matched by errors.Is.
type Error struct {
	Kind     error
	Sheet    string
	Input    string
	Sections int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownSheet:
		return fmt.Sprintf("could not find sheet %q", e.Sheet)
	case ErrInvalidSectionIndex:
		return fmt.Sprintf("section number must be a positive integer: %q", e.Input)
	case ErrSectionOutOfRange:
		return fmt.Sprintf("invalid section number %s: sheet %q has %d sections", e.Input, e.Sheet, e.Sections)
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "pycheat: unknown error"
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}
