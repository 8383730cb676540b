package conl

import (
	"github.com/stampdata/conl-format/conl/ir"
	"github.com/stampdata/conl-format/conl/parse"
	"github.com/stampdata/conl-format/conl/schema"
)

// Parse builds the document tree for CONL text.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// LoadSchema parses and resolves a schema document.
func LoadSchema(d []byte, opts ...schema.Option) (*schema.Schema, error) {
	return schema.Load(d, opts...)
}

// Check parses both inputs and validates the document against the
// schema. Parse and schema-load failures are errors; validation
// mismatches come back in the Result.
func Check(doc, schemaText []byte) (*Result, error) {
	sch, err := schema.Load(schemaText)
	if err != nil {
		return nil, err
	}
	y, err := parse.Parse(doc)
	if err != nil {
		return nil, err
	}
	return Validate(y, sch), nil
}
