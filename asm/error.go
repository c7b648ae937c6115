package asm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLabel is returned for a label declaration that is not of
	// the form (NAME).
	ErrMalformedLabel = errors.New("malformed label declaration")

	// ErrEmptyReference is returned for a bare "@".
	ErrEmptyReference = errors.New("empty reference")

	// ErrLiteralOutOfRange is returned for a decimal literal wider than 15
	// bits.
	ErrLiteralOutOfRange = errors.New("literal out of range")

	// ErrProgramTooLarge is returned when the program does not fit in ROM.
	ErrProgramTooLarge = errors.New("program too large")
)

// Error reports a failure to translate one source line.
type Error struct {
	Line   int
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func lineError(l Line, err error) error {
	return &Error{Line: l.Number, Source: l.Text, Err: err}
}
