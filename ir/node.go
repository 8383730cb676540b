package ir

// Node is one value in a parsed CONL document: a scalar, a map, a list
// or an empty placeholder. Maps keep insertion order in the parallel
// Fields/Values slices; Fields holds the key scalars. Nodes are built
// once by the parser and read-only afterwards.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	Scalar string
	Hint   string
}

func FromScalar(v string) *Node {
	return &Node{Type: ScalarType, Scalar: v}
}

func FromScalarHint(v, hint string) *Node {
	return &Node{Type: ScalarType, Scalar: v, Hint: hint}
}

func Empty() *Node {
	return &Node{Type: EmptyType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = MapType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Key.ParentField = kv.Key.Scalar
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key.Scalar
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(items []*Node) *Node {
	return FromSliceAt(&Node{}, items)
}

func FromSliceAt(res *Node, items []*Node) *Node {
	res.Type = ListType
	res.Values = make([]*Node, len(items))
	for i, y := range items {
		y.Parent = res
		y.ParentIndex = i
		res.Values[i] = y
	}
	return res
}

// Get returns the value under field, or nil. Map keys are unique and
// case-sensitive.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := 0; i < n; i++ {
		if y.Fields[i].Scalar == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Scalar = y.Scalar
	dst.Hint = y.Hint
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dstI := yf.CloneTo(&Node{})
			dstI.Parent = dst
			dst.Fields[i] = dstI
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dstI := yv.CloneTo(&Node{})
			dstI.Parent = dst
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Visit walks the subtree rooted at y, calling f before and after each
// node's children. Returning dive=false from the pre call skips the
// children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
