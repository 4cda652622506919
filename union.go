package lexema

import (
	"strings"
)

var unionFields = []string{"refs", "closed"}

func checkUnionSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, unionFields); err != nil {
		return err
	}
	refs, has, err := stringListField(ctx, n, "refs")
	if err != nil {
		return err
	}
	if !has {
		return ctx.schemaErrf("missing \"refs\"")
	}
	closed := false
	if n.has("closed") {
		closed, has = n.boolField("closed")
		if !has {
			return ctx.schemaErrf("\"closed\" must be a boolean")
		}
	}
	if closed && len(refs) == 0 {
		return ctx.schemaErrf("closed union must declare at least one ref")
	}
	for _, ref := range refs {
		if err := checkRefSyntax(ctx, ref); err != nil {
			return err
		}
		// Resolution is only checked when a document context exists;
		// isolated node checks stop at syntax.
		if ctx.catalog != nil && ctx.docID != "" {
			if _, _, err := resolveRef(ctx, ref); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkUnionData matches the value's $type against the union's refs. A
// match is validated against the resolved target schema; on no match,
// closed unions reject and open unions accept. The matched ref goes
// through the same in-progress chain as ref nodes, since a union target
// may loop back to this union without an explicit ref in between.
func checkUnionData(ctx valContext, v any, n Node) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ctx.dataErrf("expected object, got %s", jsonTypeName(v))
	}
	rawType, ok := m["$type"]
	if !ok {
		return ctx.dataErrf("union value is missing \"$type\"")
	}
	typ, ok := rawType.(string)
	if !ok {
		return ctx.dataErrf("\"$type\" must be a string")
	}
	refs, _, err := stringListField(ctx, n, "refs")
	if err != nil {
		return err
	}
	for _, ref := range refs {
		if !refMatchesType(ref, typ) {
			continue
		}
		if ctx.catalog == nil {
			return nil
		}
		if ctx.hasReference(ref) {
			return ctx.dataErrf("circular reference detected: %s", ref)
		}
		next := ctx.withReference(ref)
		target, docID, err := resolveRef(next, ref)
		if err != nil {
			return err
		}
		next = next.withDocument(docID)
		return next.dataCheck(next, v, target)
	}
	if len(refs) == 0 {
		return ctx.dataErrf("union with empty refs cannot match $type %q", typ)
	}
	closed, _ := n.boolField("closed")
	if closed {
		return ctx.dataErrf("$type %q is not allowed by closed union (refs: %s)", typ, strings.Join(refs, ", "))
	}
	return nil
}

// refMatchesType implements the lexicon reference/type matching rules:
// exact match, local-fragment suffix match ("#name" matches "name" and
// "...#name"), and the implicit-main equivalence in both directions
// ("ns" matches "ns#main" and vice versa).
func refMatchesType(ref, typ string) bool {
	if ref == typ {
		return true
	}
	if name, ok := strings.CutPrefix(ref, "#"); ok {
		return typ == name || strings.HasSuffix(typ, "#"+name)
	}
	if docID, name, ok := strings.Cut(ref, "#"); ok {
		return name == "main" && typ == docID
	}
	return typ == ref+"#main"
}
