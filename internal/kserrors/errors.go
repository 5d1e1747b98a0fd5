// Package kserrors defines the error type shared by the kickstart parsing
// packages. Every error raised while handling a directive or section header
// carries the line number it originated from.
package kserrors

import (
	"errors"
	"fmt"
)

// ParseError is a kickstart syntax or semantics violation tied to a line of
// the input document.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Unwrap allows errors.Is/As to reach a wrapped cause.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Errorf builds a ParseError for the given line.
func Errorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a line number to an existing error.
func Wrap(line int, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Line: line, Msg: err.Error(), Err: err}
}

// Line reports the line number carried by err, or 0 if err is not a
// ParseError.
func Line(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
