package ir

import (
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
)

// ToYAML renders the tree as YAML. CONL scalars are strings, so every
// leaf marshals as a string; hints do not survive the trip.
func ToYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(ToAny(y))
}

// FromYAML builds a tree from YAML, preserving key order. Non-string
// YAML scalars are carried over as their text.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return FromAny(v)
}

// ToAny converts the tree to generic Go values: yaml.MapSlice for maps
// (keeping order), []any for lists, string for scalars, nil for empty.
func ToAny(y *Node) any {
	switch y.Type {
	case MapType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f.Scalar, Value: ToAny(y.Values[i])}
		}
		return res
	case ListType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ScalarType:
		return y.Scalar
	default:
		return nil
	}
}

// FromAny is the inverse of ToAny, additionally accepting unordered
// maps and non-string scalar leaves.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Empty(), nil
	case string:
		return FromScalar(x), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, 0, len(x))
		seen := make(map[string]bool, len(x))
		for _, item := range x {
			key := fmt.Sprint(item.Key)
			if seen[key] {
				return nil, fmt.Errorf("%w: duplicate key %q", ErrConvert, key)
			}
			seen[key] = true
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: FromScalar(key), Val: val})
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		keys := make([]string, 0, len(x))
		for key := range x {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: FromScalar(key), Val: val})
		}
		return FromKeyVals(kvs), nil
	case []any:
		items := make([]*Node, 0, len(x))
		for _, item := range x {
			y, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			items = append(items, y)
		}
		return FromSlice(items), nil
	case bool, int, int64, uint64, float64:
		return FromScalar(fmt.Sprint(x)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrConvert, v)
	}
}
