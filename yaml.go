package lexema

import (
	"gopkg.in/yaml.v3"
)

// ParseDocumentYAML decodes and shape-checks a lexicon document authored
// as YAML. YAML carries no duplicate-key or ordering guarantees through
// the generic decoder, so definitions are ordered as for NewDocument.
func ParseDocumentYAML(data []byte) (*Document, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, invalidSchemaf("document is not valid YAML: %v", err)
	}
	m, ok := normalizeYAML(node).(map[string]any)
	if !ok {
		return nil, invalidSchemaf("document must be a YAML mapping")
	}
	return NewDocument(m)
}

// normalizeYAML rewrites a decoded YAML tree into the value shapes the
// validators work on. yaml.v3 hands back map[any]any for some mappings;
// those become map[string]any, dropping entries whose key is not a
// string, and nested values get the same treatment.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if ks, ok := k.(string); ok {
				out[ks] = normalizeYAML(vv)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeYAML(t[i])
		}
		return out
	default:
		return v
	}
}
