package lexema

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/samber/lo"
)

// Node is a schema node decoded from JSON, interpreted against the fixed
// set of lexicon type variants. Interpretation is lazy: a Node is just the
// raw object, and the per-variant validators decide which fields are
// meaningful and which are errors.
type Node map[string]any

// Type returns the node's type tag. ok is false when the tag is missing
// or not a string.
func (n Node) Type() (string, bool) {
	s, ok := n["type"].(string)
	return s, ok
}

func (n Node) has(key string) bool {
	_, ok := n[key]
	return ok
}

func (n Node) str(key string) (string, bool) {
	s, ok := n[key].(string)
	return s, ok
}

func (n Node) boolField(key string) (bool, bool) {
	b, ok := n[key].(bool)
	return b, ok
}

func (n Node) list(key string) ([]any, bool) {
	l, ok := n[key].([]any)
	return l, ok
}

// child returns the object stored under key as a Node.
func (n Node) child(key string) (Node, bool) {
	m, ok := n[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Node(m), true
}

// asInt coerces a decoded JSON value to an integer. Documents decoded by
// this package carry json.Number; pre-decoded maps may carry int or
// float64 (and yaml.v3 produces int), so all are accepted as long as the
// value is integral.
func asInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// jsonTypeName names the JSON type of a decoded value for error messages.
func jsonTypeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case int, int32, int64:
		return "integer"
	case float64:
		if _, ok := asInt(t); ok {
			return "integer"
		}
		return "number"
	default:
		return "unknown"
	}
}

// sortedKeys returns the map's keys in lexical order for deterministic
// iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
