package schema

import "regexp"

// PatternEngine compiles one pattern into a full-string match
// predicate. Every pattern of a schema is compiled eagerly at load
// time, so a broken pattern surfaces before any document is validated.
type PatternEngine func(pattern string) (func(string) bool, error)

// RegexpEngine is the default engine, matching the whole candidate
// against the pattern.
func RegexpEngine(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, err
	}
	return re.MatchString, nil
}
