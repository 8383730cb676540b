// Package ir contains the CONL document tree.
package ir

type Type int

const (
	// EmptyType is a key with no inline scalar and no indented block.
	// It acts as an unset default and satisfies no schema definition.
	EmptyType Type = iota
	ScalarType
	MapType
	ListType
)

func (t Type) String() string {
	switch t {
	case EmptyType:
		return "empty"
	case ScalarType:
		return "scalar"
	case MapType:
		return "map"
	case ListType:
		return "list"
	}
	return "invalid"
}

func Types() []Type {
	return []Type{EmptyType, ScalarType, MapType, ListType}
}
