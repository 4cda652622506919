package lexema

import (
	"github.com/reoring/lexema/format"
)

// Document is a parsed lexicon schema document: a valid NSID id plus a set
// of named definitions. Documents are immutable once constructed and are
// owned by the catalog that holds them.
type Document struct {
	ID string

	defs     map[string]Node
	defNames []string
}

// ParseDocument decodes and shape-checks a lexicon document from raw JSON
// bytes. Definition order follows the source text; duplicate keys anywhere
// in the document are rejected.
func ParseDocument(data []byte) (*Document, error) {
	root, order, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	return newDocument(root, order)
}

// NewDocument shape-checks an already decoded lexicon document. Since maps
// carry no source order, definitions are ordered "main" first and the rest
// lexically.
func NewDocument(raw map[string]any) (*Document, error) {
	return newDocument(raw, nil)
}

func newDocument(root map[string]any, order []string) (*Document, error) {
	id, ok := root["id"]
	if !ok {
		return nil, invalidSchemaf("document has no \"id\" field")
	}
	ids, ok := id.(string)
	if !ok {
		return nil, invalidSchemaf("document \"id\" must be a string")
	}
	if !format.IsValidNSID(ids) {
		return nil, invalidSchemaf("document id %q is not a valid NSID", ids)
	}
	if v, ok := root["lexicon"]; ok {
		if n, isInt := asInt(v); !isInt || n != 1 {
			return nil, invalidSchemaf("%s: document \"lexicon\" version must be 1", ids)
		}
	}
	rawDefs, ok := root["defs"]
	if !ok {
		return nil, invalidSchemaf("%s: document has no \"defs\" field", ids)
	}
	defsMap, ok := rawDefs.(map[string]any)
	if !ok {
		return nil, invalidSchemaf("%s: document \"defs\" must be an object", ids)
	}
	defs := make(map[string]Node, len(defsMap))
	for name, v := range defsMap {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, invalidSchemaf("%s: definition %q must be an object", ids, name)
		}
		defs[name] = Node(m)
	}
	if order == nil {
		order = defaultDefOrder(defs)
	}
	return &Document{ID: ids, defs: defs, defNames: order}, nil
}

// defaultDefOrder puts "main" first and the remaining names in lexical
// order, used when the input carried no source order.
func defaultDefOrder(defs map[string]Node) []string {
	names := make([]string, 0, len(defs))
	for _, name := range sortedKeys(defs) {
		if name == "main" {
			continue
		}
		names = append(names, name)
	}
	if _, ok := defs["main"]; ok {
		names = append([]string{"main"}, names...)
	}
	return names
}

// Defs returns the definition names in document order.
func (d *Document) Defs() []string {
	out := make([]string, len(d.defNames))
	copy(out, d.defNames)
	return out
}

// Def returns the named definition.
func (d *Document) Def(name string) (Node, bool) {
	n, ok := d.defs[name]
	return n, ok
}
