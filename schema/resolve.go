package schema

import (
	"fmt"
	"slices"
	"strings"
)

// resolve runs exactly once per schema, before any validation: it binds
// every reference to its definition, compiles every pattern through the
// engine, and proves the reference graph acyclic.
func (s *Schema) resolve(engine PatternEngine) error {
	names := make([]string, 0, len(s.Defs))
	for name := range s.Defs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		def := s.Defs[name]
		for _, m := range def.matchers() {
			if m.IsRef() {
				target := s.Defs[m.Ref]
				if target == nil {
					return fmt.Errorf("%w: %q referenced from %q", ErrUnknownDefinition, m.Ref, name)
				}
				m.target = target
				continue
			}
			match, err := engine(m.Pattern)
			if err != nil {
				return fmt.Errorf("%w: %q in %q: %w", ErrPattern, m.Pattern, name, err)
			}
			m.match = match
		}
	}
	return s.checkCycles(names)
}

const (
	unvisited = iota
	onStack
	done
)

// checkCycles is a depth-first search over the reference graph with an
// explicit on-stack marker; a back-edge to a definition on the stack is
// a cycle.
func (s *Schema) checkCycles(names []string) error {
	state := make(map[string]int, len(s.Defs))
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case onStack:
			i := slices.Index(stack, name)
			return fmt.Errorf("%w: %s", ErrCyclicDefinition,
				strings.Join(append(stack[i:], name), " -> "))
		case done:
			return nil
		}
		state[name] = onStack
		stack = append(stack, name)
		for _, m := range s.Defs[name].matchers() {
			if !m.IsRef() {
				continue
			}
			if err := visit(m.Ref); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
