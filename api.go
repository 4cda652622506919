package lexema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reoring/lexema/format"
)

// Report maps document ids to the messages of their failing definitions.
// An empty report means every definition validated.
type Report map[string][]string

// OK reports whether no definition failed.
func (r Report) OK() bool { return len(r) == 0 }

// Documents returns the failing document ids in lexical order.
func (r Report) Documents() []string {
	return sortedKeys(r)
}

// Messages flattens the report into one message per failing definition,
// ordered by document id.
func (r Report) Messages() []string {
	var out []string
	for _, id := range r.Documents() {
		out = append(out, r[id]...)
	}
	return out
}

// Validate parses the supplied lexicon documents into a catalog and
// schema-checks every definition in every document. Each input may be raw
// JSON ([]byte or json.RawMessage), an already decoded map[string]any, or
// a *Document. Malformed inputs and duplicate document ids surface as the
// error value; per-definition failures land in the report.
func Validate(documents []any, opts ...Options) (Report, error) {
	c, err := buildCatalog(documents)
	if err != nil {
		return nil, err
	}
	return c.Validate(opts...), nil
}

// ValidateRecord parses the supplied documents and validates record
// against the main definition of typeID.
func ValidateRecord(documents []any, typeID string, record any, opts ...Options) error {
	c, err := buildCatalog(documents)
	if err != nil {
		return err
	}
	return c.ValidateRecord(typeID, record, opts...)
}

// ValidateNode shape-checks a single schema node in isolation. There is
// no document context, so references are checked for syntax only.
func ValidateNode(node map[string]any) error {
	ctx := valContext{dataCheck: checkData}
	return checkSchema(ctx, Node(node))
}

// IsValidNSID reports whether s is a valid NSID.
func IsValidNSID(s string) bool { return format.IsValidNSID(s) }

// ValidateStringFormat checks s against the named string format.
func ValidateStringFormat(s string, f format.Format) error {
	return format.Validate(s, f)
}

func buildCatalog(documents []any) (*Catalog, error) {
	c := NewCatalog()
	for _, input := range documents {
		doc, err := toDocument(input)
		if err != nil {
			return nil, err
		}
		if err := c.Add(doc); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func toDocument(input any) (*Document, error) {
	switch v := input.(type) {
	case *Document:
		return v, nil
	case []byte:
		return ParseDocument(v)
	case json.RawMessage:
		return ParseDocument(v)
	case map[string]any:
		return NewDocument(v)
	default:
		return nil, invalidSchemaf("unsupported document input %T", input)
	}
}

// Validate schema-checks every definition of every document in the
// catalog, accumulating one message per failing definition, grouped by
// document id and formatted "<doc-id>#<def-name>: <detail>".
func (c *Catalog) Validate(opts ...Options) Report {
	opt := pickOptions(opts)
	report := Report{}
	for _, id := range c.ids {
		doc := c.docs[id]
		for _, name := range doc.defNames {
			def, ok := doc.Def(name)
			if !ok {
				continue
			}
			ctx := newContext(c, id, opt).withPath("defs").withPath(name)
			if err := checkSchema(ctx, def); err != nil {
				report[id] = append(report[id], fmt.Sprintf("%s#%s: %s", id, name, err.Error()))
			}
		}
	}
	return report
}

// ValidateRecord validates record against the main definition of typeID,
// which must be a record schema. A missing document is a LexiconNotFound;
// a document without a record-typed main is an InvalidSchema.
func (c *Catalog) ValidateRecord(typeID string, record any, opts ...Options) error {
	main, err := c.mainDef(typeID)
	if err != nil {
		return err
	}
	if tag, _ := main.Type(); tag != "record" {
		return invalidSchemaf("%s main definition is not a record", typeID)
	}
	if m, ok := record.(map[string]any); ok {
		if typ, ok := m["$type"].(string); ok && typ != typeID && typ != typeID+"#main" {
			return dataValidationf("record $type %q does not match %s", typ, typeID)
		}
	}
	ctx := newContext(c, typeID, pickOptions(opts))
	return checkRecordData(ctx, record, main)
}

// ValidateParams validates query-string parameters against the
// parameters declared by typeID's main definition. A schema without
// parameters accepts anything.
func (c *Catalog) ValidateParams(typeID string, params any, opts ...Options) error {
	main, err := c.mainDef(typeID)
	if err != nil {
		return err
	}
	node, ok := main.child("parameters")
	if !ok {
		return nil
	}
	ctx := newContext(c, typeID, pickOptions(opts))
	return checkParamsData(ctx, params, node)
}

// ValidateInput validates a request body against the input schema of
// typeID's main definition, which must be a procedure. An input without a
// schema accepts anything.
func (c *Catalog) ValidateInput(typeID string, body any, opts ...Options) error {
	return c.validateBody(typeID, "input", body, []string{"procedure"}, opts)
}

// ValidateOutput validates a response body against the output schema of
// typeID's main definition, which must be a query or a procedure.
func (c *Catalog) ValidateOutput(typeID string, body any, opts ...Options) error {
	return c.validateBody(typeID, "output", body, []string{"query", "procedure"}, opts)
}

// ValidateMessage validates a stream event against the message schema of
// typeID's main definition, which must be a subscription.
func (c *Catalog) ValidateMessage(typeID string, message any, opts ...Options) error {
	return c.validateBody(typeID, "message", message, []string{"subscription"}, opts)
}

func (c *Catalog) validateBody(typeID, key string, v any, allowedTypes []string, opts []Options) error {
	main, err := c.mainDef(typeID)
	if err != nil {
		return err
	}
	tag, _ := main.Type()
	if !containsString(allowedTypes, tag) {
		return invalidSchemaf("%s main definition must be a %s", typeID, strings.Join(allowedTypes, " or "))
	}
	body, ok := main.child(key)
	if !ok {
		return nil
	}
	ctx := newContext(c, typeID, pickOptions(opts))
	return checkBodyData(ctx, v, body)
}

func (c *Catalog) mainDef(typeID string) (Node, error) {
	doc, ok := c.Document(typeID)
	if !ok {
		return nil, lexiconNotFound(typeID)
	}
	main, ok := doc.Def("main")
	if !ok {
		return nil, invalidSchemaf("%s has no main definition", typeID)
	}
	return main, nil
}
