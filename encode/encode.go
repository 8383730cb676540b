// Package encode renders CONL document trees back to text. Parsing the
// output of Encode yields a tree structurally equal to the input.
package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/stampdata/conl-format/conl/ir"
	"github.com/stampdata/conl-format/conl/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	colors *Colors
}

// Encode writes node as CONL text. The root must be a map or empty,
// matching what the parser can produce.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type {
	case ir.EmptyType:
		return nil
	case ir.MapType:
		return encodeMap(node, w, 0, es)
	default:
		return fmt.Errorf("%w: document root must be a map, got %s", ErrEncoding, node.Type)
	}
}

func encodeMap(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	for i, f := range node.Fields {
		key := f.Scalar
		if token.NeedsQuote(key) {
			key = token.Quote(key)
		}
		lead := es.color(keyColor, key)
		valSep := " " + es.color(sepColor, "=") + " "
		if err := encodeEntry(w, depth, lead, valSep, node.Values[i], es); err != nil {
			return err
		}
	}
	return nil
}

func encodeList(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	for _, item := range node.Values {
		if err := encodeEntry(w, depth, es.color(sepColor, "="), " ", item, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeEntry writes one key or list-item line plus any block it opens.
// lead is the rendered key or "=" marker; valSep joins it to an inline
// value.
func encodeEntry(w io.Writer, depth int, lead, valSep string, val *ir.Node, es *EncState) error {
	pad := strings.Repeat(" ", es.indent*depth)
	switch val.Type {
	case ir.EmptyType:
		return writeString(w, pad+lead+"\n")
	case ir.ScalarType:
		if useMultiline(val) {
			return encodeMultiline(w, pad+lead+valSep, val, depth, es)
		}
		if val.Hint != "" {
			// only a multiline block carries a hint; quoting here
			// would silently lose it
			return fmt.Errorf("%w: hint %q on a scalar that cannot be a multiline block", ErrEncoding, val.Hint)
		}
		text := val.Scalar
		if token.NeedsQuote(text) || strings.Contains(text, "\n") {
			text = token.Quote(text)
		}
		return writeString(w, pad+lead+valSep+es.color(scalarColor, text)+"\n")
	case ir.MapType:
		if len(val.Fields) == 0 {
			// an empty map has no textual form; it degrades to empty
			return writeString(w, pad+lead+"\n")
		}
		if err := writeString(w, pad+lead+"\n"); err != nil {
			return err
		}
		return encodeMap(val, w, depth+1, es)
	case ir.ListType:
		if len(val.Values) == 0 {
			return writeString(w, pad+lead+"\n")
		}
		if err := writeString(w, pad+lead+"\n"); err != nil {
			return err
		}
		return encodeList(val, w, depth+1, es)
	}
	return fmt.Errorf("%w: unexpected node type %s", ErrEncoding, val.Type)
}

func encodeMultiline(w io.Writer, opener string, val *ir.Node, depth int, es *EncState) error {
	if err := writeString(w, opener+es.color(hintColor, `"""`+val.Hint)+"\n"); err != nil {
		return err
	}
	if val.Scalar == "" {
		return nil
	}
	bodyPad := strings.Repeat(" ", es.indent*(depth+1))
	for _, ln := range strings.Split(val.Scalar, "\n") {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, bodyPad+es.color(scalarColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// useMultiline decides between a multiline block and a quoted scalar. A
// block is only used when the body survives re-parsing verbatim;
// otherwise the scalar is quoted. Parsed trees always satisfy the
// safety checks; a hand-built scalar that carries a hint but fails
// them is an encoding error.
func useMultiline(val *ir.Node) bool {
	if val.Hint == "" && !strings.Contains(val.Scalar, "\n") {
		return false
	}
	return multilineSafe(val.Scalar) && hintSafe(val.Hint)
}

func multilineSafe(text string) bool {
	if text == "" {
		return true
	}
	if strings.Contains(text, "\r") || strings.HasSuffix(text, "\n") {
		return false
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		if strings.TrimSpace(ln) == "" {
			// an all-blank body line reads back as empty
			return false
		}
		if ln[0] == ' ' || ln[0] == '\t' {
			// the first body line fixes the base indent; deeper
			// indentation is only preserved after it
			if isFirstNonEmpty(lines, i) {
				return false
			}
		}
	}
	return true
}

func isFirstNonEmpty(lines []string, i int) bool {
	for j := 0; j < i; j++ {
		if lines[j] != "" {
			return false
		}
	}
	return true
}

func hintSafe(hint string) bool {
	return !strings.ContainsAny(hint, " \t;\n\r\"")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
