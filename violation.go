package conl

import "fmt"

type ViolationKind int

const (
	TypeMismatch ViolationKind = iota
	MissingRequiredItem
	UnexpectedItem
	MissingRequiredKey
	UnexpectedKey
	NoAlternativeMatched
)

func (k ViolationKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case MissingRequiredItem:
		return "MissingRequiredItem"
	case UnexpectedItem:
		return "UnexpectedItem"
	case MissingRequiredKey:
		return "MissingRequiredKey"
	case UnexpectedKey:
		return "UnexpectedKey"
	case NoAlternativeMatched:
		return "NoAlternativeMatched"
	}
	return "unknown"
}

// Violation is one localized mismatch between a document value and a
// schema definition, reported with its document path.
type Violation struct {
	Path string
	Kind ViolationKind
	Msg  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Kind, v.Path, v.Msg)
}

// Result is a validation verdict: the complete ordered list of
// violations reachable from the document root. Structural mismatch is
// the validator's normal output, never an error.
type Result struct {
	Violations []Violation
}

func (r *Result) OK() bool {
	return len(r.Violations) == 0
}
