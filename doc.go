// Package conl validates CONL documents against CONL schemas.
//
// CONL is an indentation-structured configuration format: maps of
// `key = value` lines, lists of `= item` lines, quoted and multiline
// scalars, comments after `;`. The parse package builds document trees,
// the schema package loads and resolves schemas, and this package walks
// a tree against a schema, collecting path-qualified violations:
//
//	doc, err := parse.Parse(docText)
//	sch, err := schema.Load(schemaText)
//	res := conl.Validate(doc, sch)
//	for _, v := range res.Violations {
//		fmt.Println(v)
//	}
package conl
