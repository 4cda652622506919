package lexema

// Catalog holds parsed lexicon documents keyed by id. It is read-only
// during validation; concurrent validation calls may share one catalog as
// long as nothing mutates it underneath them.
type Catalog struct {
	docs map[string]*Document
	ids  []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{docs: make(map[string]*Document)}
}

// Add inserts a parsed document. Two documents with the same id are a
// schema error, not a silent overwrite.
func (c *Catalog) Add(doc *Document) error {
	if _, ok := c.docs[doc.ID]; ok {
		return invalidSchemaf("duplicate document id %q", doc.ID)
	}
	c.docs[doc.ID] = doc
	c.ids = append(c.ids, doc.ID)
	return nil
}

// AddBytes parses raw JSON and adds the resulting document.
func (c *Catalog) AddBytes(data []byte) error {
	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}
	return c.Add(doc)
}

// AddYAML parses a YAML document and adds it.
func (c *Catalog) AddYAML(data []byte) error {
	doc, err := ParseDocumentYAML(data)
	if err != nil {
		return err
	}
	return c.Add(doc)
}

// Document returns the document with the given id.
func (c *Catalog) Document(id string) (*Document, bool) {
	d, ok := c.docs[id]
	return d, ok
}

// Documents returns the catalog's document ids in insertion order.
func (c *Catalog) Documents() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Resolve looks up a global reference ("nsid" or "nsid#name") and returns
// the target definition. Local references ("#name") have no meaning
// outside a document and are rejected.
func (c *Catalog) Resolve(ref string) (Node, error) {
	ctx := valContext{catalog: c}
	node, _, err := resolveRef(ctx, ref)
	return node, err
}
