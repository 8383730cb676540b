package schema

import "errors"

var (
	ErrShape             = errors.New("schema shape error")
	ErrUnknownDefinition = errors.New("unknown definition")
	ErrCyclicDefinition  = errors.New("cyclic definition")
	ErrPattern           = errors.New("bad pattern")
)
