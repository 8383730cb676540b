package token

type LineKind int

const (
	// LineKeyValue is `key = value`.
	LineKeyValue LineKind = iota
	// LineKeyOnly is a bare key, possibly followed by an indented block.
	LineKeyOnly
	// LineListItem is a bare `=` marker, possibly followed by an
	// indented block.
	LineListItem
	// LineListValue is `= value`.
	LineListValue
)

func (k LineKind) String() string {
	switch k {
	case LineKeyValue:
		return "key-value"
	case LineKeyOnly:
		return "key-only"
	case LineListItem:
		return "list-item"
	case LineListValue:
		return "list-item-value"
	}
	return "unknown"
}

// Scalar is one decoded scalar occurrence: its text and the optional
// content hint declared after `"""`.
type Scalar struct {
	Text string
	Hint string
}

// Line is one logical line. Blank and comment-only physical lines never
// surface as logical lines, and multiline scalar bodies are folded into
// the Val of their opening line.
type Line struct {
	Kind  LineKind
	Depth int
	Pos   Pos
	Key   Scalar
	Val   Scalar
}
