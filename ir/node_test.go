package ir

import "testing"

func kv(k string, v *Node) KeyVal {
	return KeyVal{Key: FromScalar(k), Val: v}
}

func TestGet(t *testing.T) {
	m := FromKeyVals([]KeyVal{
		kv("host", FromScalar("web")),
		kv("port", FromScalar("443")),
	})
	if got := Get(m, "host"); got == nil || got.Scalar != "web" {
		t.Errorf("Get(host) = %v", got)
	}
	if got := Get(m, "missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestCompare(t *testing.T) {
	type cmpTest struct {
		a, b *Node
		want int
	}
	cts := []cmpTest{
		{a: Empty(), b: Empty(), want: 0},
		{a: FromScalar("a"), b: FromScalar("a"), want: 0},
		{a: FromScalar("a"), b: FromScalar("b"), want: -1},
		{a: FromScalar("a"), b: FromScalarHint("a", "sh"), want: -1},
		{a: Empty(), b: FromScalar(""), want: -1},
		{a: FromScalar("z"), b: FromSlice(nil), want: -1},
		{a: FromSlice(nil), b: FromKeyVals(nil), want: -1},
		{
			a:    FromSlice([]*Node{FromScalar("a"), FromScalar("b")}),
			b:    FromSlice([]*Node{FromScalar("a"), FromScalar("b")}),
			want: 0,
		},
		{
			a:    FromSlice([]*Node{FromScalar("a")}),
			b:    FromSlice([]*Node{FromScalar("a"), FromScalar("b")}),
			want: -1,
		},
		{
			a:    FromKeyVals([]KeyVal{kv("a", FromScalar("1"))}),
			b:    FromKeyVals([]KeyVal{kv("a", FromScalar("1"))}),
			want: 0,
		},
		{
			a:    FromKeyVals([]KeyVal{kv("a", FromScalar("1")), kv("b", FromScalar("2"))}),
			b:    FromKeyVals([]KeyVal{kv("b", FromScalar("2")), kv("a", FromScalar("1"))}),
			want: -1,
		},
	}
	for i, ct := range cts {
		got := Compare(ct.a, ct.b)
		if got != ct.want {
			t.Errorf("case %d: Compare = %d, want %d", i, got, ct.want)
		}
		if rev := Compare(ct.b, ct.a); rev != -got {
			t.Errorf("case %d: Compare not antisymmetric: %d vs %d", i, got, rev)
		}
	}
}

func TestCloneEqual(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		kv("server", FromKeyVals([]KeyVal{
			kv("ports", FromSlice([]*Node{FromScalar("80"), FromScalar("443")})),
		})),
		kv("note", FromScalarHint("echo hi", "bash")),
		kv("blank", Empty()),
	})
	cl := doc.Clone()
	if !Equal(doc, cl) {
		t.Fatalf("clone not equal to original")
	}
	cl.Values[1].Scalar = "changed"
	if Equal(doc, cl) {
		t.Fatalf("mutating clone affected original")
	}
}

func TestPath(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		kv("server", FromKeyVals([]KeyVal{
			kv("ports", FromSlice([]*Node{FromScalar("80"), FromScalar("443")})),
			kv("with space", FromScalar("x")),
		})),
	})
	if got := doc.Path(); got != "$" {
		t.Errorf("root path = %q", got)
	}
	server := Get(doc, "server")
	ports := Get(server, "ports")
	if got := ports.Values[1].Path(); got != "$.server.ports[1]" {
		t.Errorf("path = %q, want $.server.ports[1]", got)
	}
	if got := Get(server, "with space").Path(); got != "$.server.'with space'" {
		t.Errorf("path = %q, want $.server.'with space'", got)
	}
}

func TestRoot(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		kv("a", FromSlice([]*Node{FromScalar("x")})),
	})
	leaf := Get(doc, "a").Values[0]
	if leaf.Root() != doc {
		t.Errorf("Root() did not reach document root")
	}
}

func TestVisit(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		kv("a", FromSlice([]*Node{FromScalar("x"), FromScalar("y")})),
		kv("b", FromScalar("z")),
	})
	var pre, post int
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, list, two items, one scalar
	if pre != 5 || post != 5 {
		t.Errorf("visited pre=%d post=%d, want 5/5", pre, post)
	}
}
