package schema

import (
	"fmt"

	"github.com/stampdata/conl-format/conl/debug"
	"github.com/stampdata/conl-format/conl/ir"
	"github.com/stampdata/conl-format/conl/parse"
)

type loadOpts struct {
	engine PatternEngine
}

type Option func(*loadOpts)

// WithPatternEngine swaps the pattern matching implementation used to
// compile matchers at load time.
func WithPatternEngine(e PatternEngine) Option {
	return func(o *loadOpts) { o.engine = e }
}

// Load parses schema text and interprets it into a resolved Schema. A
// schema is itself a conforming CONL document.
func Load(d []byte, opts ...Option) (*Schema, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return FromNode(doc, opts...)
}

// FromNode interprets an already parsed document tree as a schema and
// resolves it: references bound, patterns compiled, reference graph
// proven acyclic. The result is safe for concurrent use.
func FromNode(doc *ir.Node, opts ...Option) (*Schema, error) {
	lOpts := &loadOpts{engine: RegexpEngine}
	for _, f := range opts {
		f(lOpts)
	}
	if doc.Type != ir.MapType {
		return nil, fmt.Errorf("%w: schema document must be a map, got %s", ErrShape, doc.Type)
	}
	s := &Schema{Defs: make(map[string]*Definition, len(doc.Fields))}
	for i, f := range doc.Fields {
		def, err := interpretDef(f.Scalar, doc.Values[i])
		if err != nil {
			return nil, err
		}
		s.Defs[f.Scalar] = def
	}
	if debug.Schema() {
		debug.Logf("schema: %d definitions\n", len(s.Defs))
	}
	s.Root = s.Defs["root"]
	if s.Root == nil {
		return nil, fmt.Errorf("%w: schema has no root definition", ErrShape)
	}
	if err := s.resolve(lOpts.engine); err != nil {
		return nil, err
	}
	return s, nil
}

// interpretDef dispatches on the shape keys of a definition map.
// Exactly one shape group must be present; unknown keys are ignored for
// forward compatibility.
func interpretDef(name string, node *ir.Node) (*Definition, error) {
	if node.Type != ir.MapType {
		return nil, fmt.Errorf("%w: definition %q must be a map, got %s", ErrShape, name, node.Type)
	}
	def := &Definition{Name: name}
	var (
		scalar   = ir.Get(node, "scalar")
		reqItems = ir.Get(node, "required items")
		items    = ir.Get(node, "items")
		reqKeys  = ir.Get(node, "required keys")
		keys     = ir.Get(node, "keys")
		anyOf    = ir.Get(node, "any of")
	)
	shapes := 0
	if scalar != nil {
		shapes++
	}
	if reqItems != nil || items != nil {
		shapes++
	}
	if reqKeys != nil || keys != nil {
		shapes++
	}
	if anyOf != nil {
		shapes++
	}
	if shapes != 1 {
		return nil, fmt.Errorf("%w: definition %q must have exactly one of scalar, items, keys or any of", ErrShape, name)
	}
	var err error
	switch {
	case scalar != nil:
		def.Kind = ScalarDef
		if def.Scalar, err = interpretMatcher(scalar, name+".scalar"); err != nil {
			return nil, err
		}
	case reqItems != nil || items != nil:
		def.Kind = ListDef
		if reqItems != nil {
			if def.RequiredItems, err = matcherList(reqItems, name+".required items"); err != nil {
				return nil, err
			}
		}
		if items != nil {
			if def.Items, err = interpretMatcher(items, name+".items"); err != nil {
				return nil, err
			}
		}
	case reqKeys != nil || keys != nil:
		def.Kind = MapDef
		if reqKeys != nil {
			if def.RequiredKeys, err = matcherMap(reqKeys, name+".required keys"); err != nil {
				return nil, err
			}
		}
		if keys != nil {
			if def.Keys, err = matcherMap(keys, name+".keys"); err != nil {
				return nil, err
			}
		}
	case anyOf != nil:
		def.Kind = AnyOfDef
		if def.AnyOf, err = matcherList(anyOf, name+".any of"); err != nil {
			return nil, err
		}
		if len(def.AnyOf) == 0 {
			return nil, fmt.Errorf("%w: %s.any of needs at least one alternative", ErrShape, name)
		}
	}
	return def, nil
}

// interpretMatcher accepts a bare scalar or a map with `matches` and
// optional `docs`. Unknown keys inside a matcher map are ignored.
func interpretMatcher(node *ir.Node, where string) (*Matcher, error) {
	switch node.Type {
	case ir.ScalarType:
		return matcherFromText(node.Scalar), nil
	case ir.MapType:
		mv := ir.Get(node, "matches")
		if mv == nil || mv.Type != ir.ScalarType {
			return nil, fmt.Errorf("%w: %s: matcher map needs a scalar `matches`", ErrShape, where)
		}
		m := matcherFromText(mv.Scalar)
		if docs := ir.Get(node, "docs"); docs != nil && docs.Type == ir.ScalarType {
			m.Docs = docs.Scalar
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %s: matcher must be a scalar or a map, got %s", ErrShape, where, node.Type)
	}
}

func matcherList(node *ir.Node, where string) ([]*Matcher, error) {
	if node.Type != ir.ListType {
		return nil, fmt.Errorf("%w: %s must be a list, got %s", ErrShape, where, node.Type)
	}
	ms := make([]*Matcher, 0, len(node.Values))
	for i, item := range node.Values {
		m, err := interpretMatcher(item, fmt.Sprintf("%s[%d]", where, i))
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func matcherMap(node *ir.Node, where string) ([]KeyMatcher, error) {
	if node.Type != ir.MapType {
		return nil, fmt.Errorf("%w: %s must be a map, got %s", ErrShape, where, node.Type)
	}
	kms := make([]KeyMatcher, 0, len(node.Fields))
	for i, f := range node.Fields {
		vm, err := interpretMatcher(node.Values[i], where+"."+f.Scalar)
		if err != nil {
			return nil, err
		}
		kms = append(kms, KeyMatcher{Key: matcherFromText(f.Scalar), Val: vm})
	}
	return kms, nil
}
