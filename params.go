package lexema

var paramsFields = []string{"properties", "required"}

// paramsLeafTypes are the only types a params property may carry, either
// directly or as array items. Params travel in URL query strings, so
// nested objects, blobs and the other structured types are rejected.
var paramsLeafTypes = []string{"boolean", "integer", "string", "unknown"}

func checkParamsSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, paramsFields); err != nil {
		return err
	}
	properties, err := objectProperties(ctx, n)
	if err != nil {
		return err
	}
	required, hasRequired, err := stringListField(ctx, n, "required")
	if err != nil {
		return err
	}
	if hasRequired {
		for _, name := range required {
			if _, ok := properties[name]; !ok {
				return ctx.schemaErrf("required field %q is not defined in properties", name)
			}
		}
	}
	for _, name := range sortedKeys(properties) {
		if name == "" {
			return ctx.schemaErrf("property name must not be empty")
		}
		prop := properties[name]
		child := ctx.withPath("properties").withPath(name)
		if err := checkParamsLeaf(child, prop); err != nil {
			return err
		}
		if err := checkSchema(child, prop); err != nil {
			return err
		}
	}
	return nil
}

func checkParamsLeaf(ctx valContext, prop Node) error {
	tag, ok := prop.Type()
	if !ok {
		return ctx.schemaErrf("missing \"type\" field")
	}
	if containsString(paramsLeafTypes, tag) {
		return nil
	}
	if tag != "array" {
		return ctx.schemaErrf("type %q is not allowed in params", tag)
	}
	items, ok := prop.child("items")
	if !ok {
		return ctx.schemaErrf("missing \"items\"")
	}
	itemTag, _ := items.Type()
	if !containsString(paramsLeafTypes, itemTag) {
		return ctx.withPath("items").schemaErrf("type %q is not allowed in params", itemTag)
	}
	return nil
}

// checkParamsData mirrors object data validation restricted to the params
// leaf types. Params have no nullable list, so null values always fail.
func checkParamsData(ctx valContext, v any, n Node) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ctx.dataErrf("expected object, got %s", jsonTypeName(v))
	}
	properties, err := objectProperties(ctx, n)
	if err != nil {
		return err
	}
	required, _, err := stringListField(ctx, n, "required")
	if err != nil {
		return err
	}
	for _, name := range required {
		if _, ok := m[name]; !ok {
			return ctx.dataErrf("required field '%s' is missing", name)
		}
	}
	for _, name := range sortedKeys(m) {
		schema, ok := properties[name]
		if !ok {
			continue
		}
		child := ctx.withPath(name)
		if m[name] == nil {
			return child.dataErrf("cannot be null")
		}
		if err := checkData(child, m[name], schema); err != nil {
			return err
		}
	}
	return nil
}
