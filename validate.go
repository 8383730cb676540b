package conl

import (
	"fmt"
	"strings"

	"github.com/stampdata/conl-format/conl/debug"
	"github.com/stampdata/conl-format/conl/ir"
	"github.com/stampdata/conl-format/conl/schema"
)

// Validate walks doc against the schema's root definition and collects
// every violation. It is a pure function: the same (doc, schema) pair
// always yields the same result, and neither input is mutated, so one
// resolved schema may serve many concurrent Validate calls.
func Validate(doc *ir.Node, s *schema.Schema) *Result {
	var vs []Violation
	validateDef(doc, s.Root, &vs)
	return &Result{Violations: vs}
}

func add(out *[]Violation, y *ir.Node, kind ViolationKind, format string, args ...any) {
	*out = append(*out, Violation{Path: y.Path(), Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

func validateDef(y *ir.Node, def *schema.Definition, out *[]Violation) {
	if debug.Validate() {
		debug.Logf("validate %s at %s against %q\n", y.Type, y.Path(), def.Name)
	}
	// An empty value is a default-request signal, not a type; it
	// satisfies no definition.
	if y.Type == ir.EmptyType {
		add(out, y, TypeMismatch, "empty value does not satisfy %s definition %q", def.Kind, def.Name)
		return
	}
	switch def.Kind {
	case schema.ScalarDef:
		matchValue(y, def.Scalar, out)
	case schema.ListDef:
		validateList(y, def, out)
	case schema.MapDef:
		validateMap(y, def, out)
	case schema.AnyOfDef:
		validateAnyOf(y, def, out)
	}
}

// matchValue applies one matcher to one value: references recurse into
// their definition, patterns demand a scalar whose whole text matches.
func matchValue(y *ir.Node, m *schema.Matcher, out *[]Violation) {
	if target := m.Target(); target != nil {
		validateDef(y, target, out)
		return
	}
	if y.Type != ir.ScalarType {
		add(out, y, TypeMismatch, "expected scalar matching %q, got %s", m, y.Type)
		return
	}
	if !m.MatchesText(y.Scalar) {
		add(out, y, TypeMismatch, "%q does not match %q", y.Scalar, m)
	}
}

// check runs a trial match into a fresh violation list.
func check(y *ir.Node, m *schema.Matcher) []Violation {
	var vs []Violation
	matchValue(y, m, &vs)
	return vs
}

func validateList(y *ir.Node, def *schema.Definition, out *[]Violation) {
	if y.Type != ir.ListType {
		add(out, y, TypeMismatch, "expected list %q, got %s", def.Name, y.Type)
		return
	}
	n := len(y.Values)
	for i, rm := range def.RequiredItems {
		if i < n {
			matchValue(y.Values[i], rm, out)
			continue
		}
		*out = append(*out, Violation{
			Path: fmt.Sprintf("%s[%d]", y.Path(), i),
			Kind: MissingRequiredItem,
			Msg:  fmt.Sprintf("missing required item matching %q", rm),
		})
	}
	for i := len(def.RequiredItems); i < n; i++ {
		if def.Items != nil {
			matchValue(y.Values[i], def.Items, out)
			continue
		}
		add(out, y.Values[i], UnexpectedItem, "unexpected item past the %d required", len(def.RequiredItems))
	}
}

// validateMap binds required pairs to entries one-to-one, in schema
// order, first-fit: an entry satisfying both key and value matchers is
// preferred, a key-only match still binds but reports the value
// mismatch. Entries left over must satisfy some keys pair.
func validateMap(y *ir.Node, def *schema.Definition, out *[]Violation) {
	if y.Type != ir.MapType {
		add(out, y, TypeMismatch, "expected map %q, got %s", def.Name, y.Type)
		return
	}
	n := len(y.Fields)
	consumed := make([]bool, n)
	for _, req := range def.RequiredKeys {
		bound := -1
		for j := 0; j < n; j++ {
			if consumed[j] || !req.Key.MatchesText(y.Fields[j].Scalar) {
				continue
			}
			if len(check(y.Values[j], req.Val)) == 0 {
				bound = j
				break
			}
		}
		if bound >= 0 {
			consumed[bound] = true
			continue
		}
		for j := 0; j < n; j++ {
			if !consumed[j] && req.Key.MatchesText(y.Fields[j].Scalar) {
				bound = j
				break
			}
		}
		if bound >= 0 {
			consumed[bound] = true
			add(out, y.Values[bound], MissingRequiredKey,
				"value of key %q does not satisfy required matcher %q", y.Fields[bound].Scalar, req.Val)
			continue
		}
		add(out, y, MissingRequiredKey, "missing required key matching %q", req.Key)
	}
	for j := 0; j < n; j++ {
		if consumed[j] {
			continue
		}
		key := y.Fields[j].Scalar
		var best []Violation
		matched, keyMatched := false, false
		for _, km := range def.Keys {
			if !km.Key.MatchesText(key) {
				continue
			}
			keyMatched = true
			trial := check(y.Values[j], km.Val)
			if len(trial) == 0 {
				matched = true
				break
			}
			if best == nil || len(trial) < len(best) {
				best = trial
			}
		}
		switch {
		case matched:
		case keyMatched:
			*out = append(*out, best...)
		default:
			add(out, y.Values[j], UnexpectedKey, "unexpected key %q", key)
		}
	}
}

// validateAnyOf passes when any alternative matches; otherwise it emits
// a single violation aggregating the closest alternative's failures.
func validateAnyOf(y *ir.Node, def *schema.Definition, out *[]Violation) {
	var best []Violation
	for _, alt := range def.AnyOf {
		trial := check(y, alt)
		if len(trial) == 0 {
			return
		}
		if best == nil || len(trial) < len(best) {
			best = trial
		}
	}
	msgs := make([]string, len(best))
	for i, v := range best {
		msgs[i] = v.Msg
	}
	add(out, y, NoAlternativeMatched, "no alternative of %q matched; closest failed with: %s",
		def.Name, strings.Join(msgs, "; "))
}
