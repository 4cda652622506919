package lexema

var arrayFields = []string{"items", "minLength", "maxLength"}

func checkArraySchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, arrayFields); err != nil {
		return err
	}
	items, ok := n.child("items")
	if !ok {
		if n.has("items") {
			return ctx.schemaErrf("\"items\" must be an object")
		}
		return ctx.schemaErrf("missing \"items\"")
	}
	if err := checkBoundPair(ctx, n, "minLength", "maxLength", true); err != nil {
		return err
	}
	return checkSchema(ctx.withPath("items"), items)
}

func checkArrayData(ctx valContext, v any, n Node) error {
	list, ok := v.([]any)
	if !ok {
		return ctx.dataErrf("expected array, got %s", jsonTypeName(v))
	}
	minV, hasMin, err := intField(ctx, n, "minLength")
	if err != nil {
		return err
	}
	if hasMin && int64(len(list)) < minV {
		return ctx.dataErrf("array length %d is less than minLength %d", len(list), minV)
	}
	maxV, hasMax, err := intField(ctx, n, "maxLength")
	if err != nil {
		return err
	}
	if hasMax && int64(len(list)) > maxV {
		return ctx.dataErrf("array length %d exceeds maxLength %d", len(list), maxV)
	}
	items, ok := n.child("items")
	if !ok {
		return ctx.schemaErrf("missing \"items\"")
	}
	for i, item := range list {
		if err := checkData(ctx.withIndex(i), item, items); err != nil {
			return err
		}
	}
	return nil
}
