// Package parse builds CONL document trees from text.
package parse

import (
	"errors"
	"fmt"

	"github.com/stampdata/conl-format/conl/debug"
	"github.com/stampdata/conl-format/conl/ir"
	"github.com/stampdata/conl-format/conl/token"
)

// Parse builds the document tree for d. The root of a document is a map
// or, for blank input, empty. Parsing is fail-fast: the first structural
// error is returned as a *Error and no partial tree is produced.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	lines, err := token.Lines(d)
	if err != nil {
		var se *token.ScanError
		if errors.As(err, &se) {
			return nil, newError(se.Err, se.Pos, se.Err.Error())
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d logical lines\n", len(lines))
	}
	if len(lines) == 0 {
		return ir.Empty(), nil
	}
	first := lines[0]
	if first.Kind == token.LineListItem || first.Kind == token.LineListValue {
		return nil, newError(ErrRootList, first.Pos, "document root must be a map, not a list")
	}
	if first.Depth != 0 {
		return nil, newError(token.ErrIndentation, first.Pos, "unexpected indent at document root")
	}
	b := &builder{lines: lines, opts: pOpts}
	root, err := b.container(0, 0)
	if err != nil {
		return nil, err
	}
	if b.i != len(b.lines) {
		ln := b.lines[b.i]
		return nil, newError(token.ErrIndentation, ln.Pos,
			fmt.Sprintf("dedent to depth %d does not match any open block", ln.Depth))
	}
	return root, nil
}

type builder struct {
	lines []token.Line
	i     int
	opts  *parseOpts
}

// container builds the map or list whose first line is the current
// line. The caller guarantees that line's depth equals depth.
func (b *builder) container(depth, level int) (*ir.Node, error) {
	ln := b.lines[b.i]
	if level >= b.opts.maxDepth {
		return nil, newError(ErrMaxDepth, ln.Pos,
			fmt.Sprintf("nesting deeper than %d levels", b.opts.maxDepth))
	}
	switch ln.Kind {
	case token.LineListItem, token.LineListValue:
		return b.list(depth, level)
	default:
		return b.mapc(depth, level)
	}
}

func (b *builder) mapc(depth, level int) (*ir.Node, error) {
	var kvs []ir.KeyVal
	seen := map[string]bool{}
	for b.i < len(b.lines) {
		ln := b.lines[b.i]
		if ln.Depth < depth {
			break
		}
		if ln.Depth > depth {
			return nil, newError(token.ErrIndentation, ln.Pos,
				"indent does not match any open block")
		}
		switch ln.Kind {
		case token.LineListItem, token.LineListValue:
			return nil, newError(ErrMixedContainer, ln.Pos,
				"list item among the keys of a map")
		case token.LineKeyValue, token.LineKeyOnly:
			key := ln.Key.Text
			if seen[key] {
				return nil, newError(ErrDuplicateKey, ln.Pos, fmt.Sprintf("duplicate key %q", key))
			}
			seen[key] = true
			b.i++
			val, err := b.valueOf(ln, depth, level)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromScalar(key), Val: val})
		default:
			return nil, fmt.Errorf("%w: unexpected line kind %s", errInternal, ln.Kind)
		}
	}
	return ir.FromKeyVals(kvs), nil
}

func (b *builder) list(depth, level int) (*ir.Node, error) {
	var items []*ir.Node
	for b.i < len(b.lines) {
		ln := b.lines[b.i]
		if ln.Depth < depth {
			break
		}
		if ln.Depth > depth {
			return nil, newError(token.ErrIndentation, ln.Pos,
				"indent does not match any open block")
		}
		switch ln.Kind {
		case token.LineKeyValue, token.LineKeyOnly:
			return nil, newError(ErrMixedContainer, ln.Pos,
				"key among the items of a list")
		case token.LineListItem, token.LineListValue:
			b.i++
			val, err := b.valueOf(ln, depth, level)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		default:
			return nil, fmt.Errorf("%w: unexpected line kind %s", errInternal, ln.Kind)
		}
	}
	return ir.FromSlice(items), nil
}

// valueOf resolves the value introduced by a key or list-item line: the
// inline scalar, a nested container when the next line is deeper, or
// empty. A line may carry an inline scalar or open a block, never both.
func (b *builder) valueOf(ln token.Line, depth, level int) (*ir.Node, error) {
	inline := ln.Kind == token.LineKeyValue || ln.Kind == token.LineListValue
	block := b.i < len(b.lines) && b.lines[b.i].Depth > depth
	if inline {
		if block {
			return nil, newError(ErrMalformedNode, b.lines[b.i].Pos,
				"indented block under a line that already has a value")
		}
		return ir.FromScalarHint(ln.Val.Text, ln.Val.Hint), nil
	}
	if !block {
		return ir.Empty(), nil
	}
	return b.container(b.lines[b.i].Depth, level+1)
}
