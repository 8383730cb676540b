package conl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCheck(t *testing.T, doc, schema string) *Result {
	t.Helper()
	res, err := Check([]byte(doc), []byte(schema))
	require.NoError(t, err)
	return res
}

func TestValidateOK(t *testing.T) {
	res := mustCheck(t, `
name = web
port = 8080
tags
  = alpha
  = beta
`, `
root
  required keys
    name = .*
    port = <port>
  keys
    tags = <tags>
port
  scalar = \d+
tags
  items = [a-z]+
`)
	assert.True(t, res.OK(), "violations: %v", res.Violations)
}

func TestValidatePatternAnchoring(t *testing.T) {
	schema := "root\n  required keys\n    port = \\d+\n"

	res := mustCheck(t, "port = 8080\n", schema)
	assert.True(t, res.OK())

	res = mustCheck(t, "port = 8080ms\n", schema)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, MissingRequiredKey, v.Kind)
	assert.Equal(t, "$.port", v.Path)
	assert.Contains(t, v.Msg, "does not satisfy")
}

func TestValidateRequiredKeyValueMismatch(t *testing.T) {
	// a present key with a failing value is one violation, not a
	// missing-key plus an unexpected-key pair
	res := mustCheck(t, "type = proxy\n", `
root
  required keys
    type = server|client
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, MissingRequiredKey, v.Kind)
	assert.Equal(t, "$.type", v.Path)
}

func TestValidateMissingRequiredKey(t *testing.T) {
	res := mustCheck(t, "other = 1\n", `
root
  required keys
    type = server|client
  keys
    other = \d+
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, MissingRequiredKey, v.Kind)
	assert.Equal(t, "$", v.Path)
	assert.Contains(t, v.Msg, "missing required key")
}

func TestValidateRequiredKeyBindsBestEntry(t *testing.T) {
	// both keys match env.*; the one whose value also matches must be
	// the one consumed, leaving the other to the keys section
	res := mustCheck(t, "env_a = oops\nenv_b = 5\n", `
root
  required keys
    env.* = \d+
  keys
    env.* = .*
`)
	assert.True(t, res.OK(), "violations: %v", res.Violations)
}

func TestValidateUnexpectedKey(t *testing.T) {
	res := mustCheck(t, "name = x\nbogus = 1\n", `
root
  required keys
    name = .*
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, UnexpectedKey, v.Kind)
	assert.Equal(t, "$.bogus", v.Path)
}

func TestValidateKeysValueViolationLocalized(t *testing.T) {
	res := mustCheck(t, "retries = soon\n", `
root
  keys
    retries = \d+
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, TypeMismatch, v.Kind)
	assert.Equal(t, "$.retries", v.Path)
}

func TestValidateListRequiredItems(t *testing.T) {
	schema := `
root
  keys
    steps = <steps>
steps
  required items
    = init
    = run
  items = extra-\d+
`
	res := mustCheck(t, "steps\n  = init\n  = run\n  = extra-1\n  = extra-2\n", schema)
	assert.True(t, res.OK(), "violations: %v", res.Violations)

	res = mustCheck(t, "steps\n  = init\n", schema)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, MissingRequiredItem, v.Kind)
	assert.Equal(t, "$.steps[1]", v.Path)

	res = mustCheck(t, "steps\n  = init\n  = run\n  = oops\n", schema)
	require.Len(t, res.Violations, 1)
	v = res.Violations[0]
	assert.Equal(t, TypeMismatch, v.Kind)
	assert.Equal(t, "$.steps[2]", v.Path)
}

func TestValidateListNoExtrasAllowed(t *testing.T) {
	res := mustCheck(t, "pair\n  = a\n  = b\n  = c\n", `
root
  keys
    pair = <pair>
pair
  required items
    = .*
    = .*
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, UnexpectedItem, v.Kind)
	assert.Equal(t, "$.pair[2]", v.Path)
}

func TestValidateTypeMismatch(t *testing.T) {
	res := mustCheck(t, "port\n  nested = 1\n", `
root
  required keys
    port = \d+
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, MissingRequiredKey, v.Kind)
	assert.Equal(t, "$.port", v.Path)
	assert.Contains(t, v.Msg, "does not satisfy")
}

func TestValidateEmptySatisfiesNothing(t *testing.T) {
	res := mustCheck(t, "name\n", `
root
  keys
    name = .*
`)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, TypeMismatch, v.Kind)
	assert.Equal(t, "$.name", v.Path)
	assert.Contains(t, v.Msg, "empty value")
}

func TestValidateAnyOf(t *testing.T) {
	schema := `
root
  keys
    timeout = <duration>
duration
  any of
    = \d+ms
    = \d+s
    = <special>
special
  scalar = never
`
	for _, ok := range []string{"30ms", "5s", "never"} {
		res := mustCheck(t, "timeout = "+ok+"\n", schema)
		assert.True(t, res.OK(), "%s: %v", ok, res.Violations)
	}
	res := mustCheck(t, "timeout = soon\n", schema)
	require.Len(t, res.Violations, 1)
	v := res.Violations[0]
	assert.Equal(t, NoAlternativeMatched, v.Kind)
	assert.Equal(t, "$.timeout", v.Path)
	assert.Contains(t, v.Msg, `"duration"`)
}

func TestValidateAnyOfContainers(t *testing.T) {
	schema := `
root
  keys
    listen = <listen>
listen
  any of
    = \d+
    = <listen list>
listen list
  items = \d+
`
	res := mustCheck(t, "listen = 80\n", schema)
	assert.True(t, res.OK(), "%v", res.Violations)

	res = mustCheck(t, "listen\n  = 80\n  = 443\n", schema)
	assert.True(t, res.OK(), "%v", res.Violations)

	res = mustCheck(t, "listen\n  = 80\n  = x\n", schema)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, NoAlternativeMatched, res.Violations[0].Kind)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	res := mustCheck(t, "a = x\nb = y\nc = z\n", `
root
  required keys
    a = \d+
    b = \d+
  keys
    c = \d+
`)
	assert.Len(t, res.Violations, 3)
}

func TestValidateDeterministic(t *testing.T) {
	doc := []byte("a = x\nb\n  = 1\n  = y\nc = z\n")
	schemaText := []byte(`
root
  required keys
    a = \d+
  keys
    b = <nums>
    c = \d+
nums
  items = \d+
`)
	first, err := Check(doc, schemaText)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Check(doc, schemaText)
		require.NoError(t, err)
		assert.Equal(t, first.Violations, again.Violations)
	}
}

func TestViolationString(t *testing.T) {
	v := Violation{Path: "$.port", Kind: TypeMismatch, Msg: "bad"}
	assert.Equal(t, "TypeMismatch at $.port: bad", v.String())
}

func TestCheckErrors(t *testing.T) {
	_, err := Check([]byte("a = 1\na = 2\n"), []byte("root\n  keys\n    a = .*\n"))
	assert.Error(t, err, "document parse error surfaces as error")

	_, err = Check([]byte("a = 1\n"), []byte("no root here\n  keys\n    a = .*\n"))
	assert.Error(t, err, "schema without root is an error")
}
