package parse

// DefaultMaxDepth bounds container nesting so adversarial input cannot
// exhaust the stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// WithMaxDepth overrides the nesting depth ceiling. n <= 0 restores the
// default.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}
