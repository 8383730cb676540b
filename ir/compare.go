package ir

import (
	"cmp"
	"strings"
)

// Equal reports structural equality: same types, same scalar text and
// hints, same keys in the same order, same list items in the same
// order. Parent links do not participate.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case EmptyType:
		return 0
	case ScalarType:
		if c := strings.Compare(a.Scalar, b.Scalar); c != 0 {
			return c
		}
		return strings.Compare(a.Hint, b.Hint)
	case ListType:
		return compareLists(a, b)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

// rank orders types: Empty < Scalar < List < Map.
func rank(t Type) int {
	switch t {
	case EmptyType:
		return 0
	case ScalarType:
		return 1
	case ListType:
		return 2
	case MapType:
		return 3
	}
	return 100
}

func compareLists(a, b *Node) int {
	minLen := min(len(a.Values), len(b.Values))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareMaps(a, b *Node) int {
	minLen := min(len(a.Fields), len(b.Fields))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
