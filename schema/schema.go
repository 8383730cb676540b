// Package schema holds the CONL schema model: named definitions built
// from a schema document, resolved once and then shared read-only by
// any number of validation runs.
package schema

type DefKind int

const (
	ScalarDef DefKind = iota
	ListDef
	MapDef
	AnyOfDef
)

func (k DefKind) String() string {
	switch k {
	case ScalarDef:
		return "scalar"
	case ListDef:
		return "list"
	case MapDef:
		return "map"
	case AnyOfDef:
		return "any of"
	}
	return "invalid"
}

// Schema is a resolved set of definitions. Root is the definition named
// "root", which the document root must satisfy.
type Schema struct {
	Defs map[string]*Definition
	Root *Definition
}

// Definition is one named rule. Exactly one of the four shape groups is
// populated, per Kind.
type Definition struct {
	Name string
	Kind DefKind

	// ScalarDef
	Scalar *Matcher

	// ListDef
	RequiredItems []*Matcher
	Items         *Matcher

	// MapDef
	RequiredKeys []KeyMatcher
	Keys         []KeyMatcher

	// AnyOfDef
	AnyOf []*Matcher
}

// KeyMatcher pairs the matcher for a map key with the matcher for its
// value.
type KeyMatcher struct {
	Key *Matcher
	Val *Matcher
}

// Matcher is a schema-side rule: either an anchored regex Pattern or a
// Reference to another definition. Docs is carried for tooling and
// never affects matching.
type Matcher struct {
	Pattern string
	Ref     string
	Docs    string

	match  func(string) bool
	target *Definition
}

// matcherFromText classifies a raw matcher string: <name> is a
// reference, anything else a pattern.
func matcherFromText(text string) *Matcher {
	if len(text) >= 2 && text[0] == '<' && text[len(text)-1] == '>' {
		return &Matcher{Ref: text[1 : len(text)-1]}
	}
	return &Matcher{Pattern: text}
}

func (m *Matcher) IsRef() bool {
	return m.Ref != ""
}

// Target returns the resolved definition of a reference matcher, nil
// for patterns.
func (m *Matcher) Target() *Definition {
	return m.target
}

func (m *Matcher) String() string {
	if m.IsRef() {
		return "<" + m.Ref + ">"
	}
	return m.Pattern
}

// MatchesText reports whether text satisfies the matcher in a string
// position (a scalar's decoded text or a map key). References bottom
// out through scalar and any-of definitions; list and map definitions
// never match a string.
func (m *Matcher) MatchesText(text string) bool {
	if m.target != nil {
		return m.target.matchesText(text)
	}
	return m.match != nil && m.match(text)
}

func (d *Definition) matchesText(text string) bool {
	switch d.Kind {
	case ScalarDef:
		return d.Scalar.MatchesText(text)
	case AnyOfDef:
		for _, alt := range d.AnyOf {
			if alt.MatchesText(text) {
				return true
			}
		}
	}
	return false
}

// matchers returns every matcher of d in a stable order, for resolution
// and cycle detection.
func (d *Definition) matchers() []*Matcher {
	var ms []*Matcher
	if d.Scalar != nil {
		ms = append(ms, d.Scalar)
	}
	ms = append(ms, d.RequiredItems...)
	if d.Items != nil {
		ms = append(ms, d.Items)
	}
	for _, km := range d.RequiredKeys {
		ms = append(ms, km.Key, km.Val)
	}
	for _, km := range d.Keys {
		ms = append(ms, km.Key, km.Val)
	}
	ms = append(ms, d.AnyOf...)
	return ms
}
