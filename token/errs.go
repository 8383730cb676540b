package token

import (
	"errors"
	"fmt"
)

var (
	ErrIndentation    = errors.New("bad indentation")
	ErrMixedIndent    = errors.New("mixed tabs and spaces in indentation")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode escape")
	ErrUnterminated   = errors.New("unterminated quoted scalar")
	ErrTrailing       = errors.New("trailing characters after quoted scalar")
	ErrEmptyKey       = errors.New("empty key")
	ErrMissingValue   = errors.New("missing value after '='")
	ErrBadHint        = errors.New("malformed multiline hint")
	ErrCarriageReturn = errors.New("carriage return inside multiline body")
)

// ScanError is a lexing or scalar decoding failure at a known position.
type ScanError struct {
	Err error
	Pos Pos
}

func NewScanError(err error, pos Pos) *ScanError {
	return &ScanError{Err: err, Pos: pos}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}
