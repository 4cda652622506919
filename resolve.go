package lexema

import (
	"strings"

	"github.com/reoring/lexema/format"
)

// checkRefSyntax validates the shape of a reference string without
// touching the catalog. Valid forms: "#name", "nsid" and "nsid#name".
func checkRefSyntax(ctx valContext, ref string) error {
	if ref == "" {
		return ctx.schemaErrf("reference must not be empty")
	}
	switch strings.Count(ref, "#") {
	case 0:
		if !format.IsValidNSID(ref) {
			return ctx.schemaErrf("reference %q is not a valid NSID", ref)
		}
		return nil
	case 1:
		_, name, _ := strings.Cut(ref, "#")
		if name == "" {
			return ctx.schemaErrf("reference %q has an empty definition name", ref)
		}
		return nil
	default:
		return ctx.schemaErrf("reference %q has more than one \"#\"", ref)
	}
}

// parseRef splits a reference into its target document id and definition
// name, resolving local references against the context's current document.
func parseRef(ctx valContext, ref string) (docID, name string, err error) {
	if err := checkRefSyntax(ctx, ref); err != nil {
		return "", "", err
	}
	if rest, ok := strings.CutPrefix(ref, "#"); ok {
		if ctx.docID == "" {
			return "", "", ctx.schemaErrf("local reference %q used outside a document", ref)
		}
		return ctx.docID, rest, nil
	}
	if docID, name, ok := strings.Cut(ref, "#"); ok {
		return docID, name, nil
	}
	return ref, "main", nil
}

// resolveRef parses ref and returns the target definition together with
// the id of the document it lives in. A missing document is a
// LexiconNotFound; a missing definition inside a present document is an
// InvalidSchema.
func resolveRef(ctx valContext, ref string) (Node, string, error) {
	docID, name, err := parseRef(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	if ctx.catalog == nil {
		return nil, "", lexiconNotFound(docID)
	}
	doc, ok := ctx.catalog.Document(docID)
	if !ok {
		return nil, "", lexiconNotFound(docID)
	}
	node, ok := doc.Def(name)
	if !ok {
		return nil, "", ctx.schemaErrf("definition not found: %s#%s", docID, name)
	}
	return node, docID, nil
}
