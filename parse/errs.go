package parse

import (
	"errors"
	"fmt"

	"github.com/stampdata/conl-format/conl/token"
)

var (
	errInternal = errors.New("internal parse error")

	ErrDuplicateKey   = errors.New("duplicate key")
	ErrMixedContainer = errors.New("mixed map and list lines")
	ErrMalformedNode  = errors.New("malformed node")
	ErrRootList       = errors.New("root value must be a map")
	ErrMaxDepth       = errors.New("nesting depth limit exceeded")
)

// Error is the single structured parse error: a kind, a message and the
// offending position. Err holds the sentinel the kind derives from, so
// errors.Is works against both parse and token sentinels.
type Error struct {
	Err error
	Msg string
	Pos token.Pos
}

func newError(err error, pos token.Pos, msg string) *Error {
	return &Error{Err: err, Msg: msg, Pos: pos}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Kind(), e.Msg, e.Pos)
}

func (e *Error) Line() int { return e.Pos.Line }
func (e *Error) Col() int  { return e.Pos.Col }

// Kind names the error category.
func (e *Error) Kind() string {
	switch {
	case errors.Is(e.Err, token.ErrIndentation),
		errors.Is(e.Err, token.ErrMixedIndent):
		return "IndentationError"
	case errors.Is(e.Err, token.ErrBadEscape),
		errors.Is(e.Err, token.ErrBadUnicode),
		errors.Is(e.Err, token.ErrUnterminated),
		errors.Is(e.Err, token.ErrTrailing),
		errors.Is(e.Err, token.ErrBadHint),
		errors.Is(e.Err, token.ErrCarriageReturn):
		return "ScalarDecodeError"
	case errors.Is(e.Err, ErrDuplicateKey):
		return "DuplicateKeyError"
	case errors.Is(e.Err, ErrMixedContainer):
		return "MixedContainerError"
	case errors.Is(e.Err, ErrMalformedNode),
		errors.Is(e.Err, ErrRootList),
		errors.Is(e.Err, token.ErrEmptyKey),
		errors.Is(e.Err, token.ErrMissingValue):
		return "MalformedNodeError"
	case errors.Is(e.Err, ErrMaxDepth):
		return "DepthLimitError"
	}
	return "ParseError"
}
