package models

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which stage of the pipeline an error came from.
type ErrorKind string

const (
	ErrParse     ErrorKind = "parse"     // input text is not a valid document
	ErrStructure ErrorKind = "structure" // valid document, unusable shape (bad marker, limits)
	ErrArchive   ErrorKind = "archive"   // archive serialization failed
)

// Error is the structured result reported at the conversion boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewParseError builds a parse-stage error.
func NewParseError(format string, args ...any) *Error {
	return newError(ErrParse, format, args...)
}

// NewStructureError builds a structure-stage error.
func NewStructureError(format string, args ...any) *Error {
	return newError(ErrStructure, format, args...)
}

// NewArchiveError builds an archive-stage error.
func NewArchiveError(format string, args ...any) *Error {
	return newError(ErrArchive, format, args...)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Message: err.Error(), Err: errors.Unwrap(err)}
}

// WrapError attaches a kind to err unless it already carries one.
func WrapError(kind ErrorKind, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf extracts the error kind, or an empty kind for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
