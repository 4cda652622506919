package lexema

var refFields = []string{"ref"}

func checkRefSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, refFields); err != nil {
		return err
	}
	ref, ok := n.str("ref")
	if !ok {
		if n.has("ref") {
			return ctx.schemaErrf("\"ref\" must be a string")
		}
		return ctx.schemaErrf("missing \"ref\"")
	}
	if err := checkRefSyntax(ctx, ref); err != nil {
		return err
	}
	if ctx.catalog != nil && ctx.docID != "" {
		if _, _, err := resolveRef(ctx, ref); err != nil {
			return err
		}
	}
	return nil
}

// checkRefData follows a reference and re-enters data validation on the
// target. The in-progress reference chain is consulted first: a reference
// already being followed means the chain loops without consuming data,
// and would otherwise recurse forever.
func checkRefData(ctx valContext, v any, n Node) error {
	ref, ok := n.str("ref")
	if !ok {
		return ctx.schemaErrf("missing \"ref\"")
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
