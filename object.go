package lexema

var objectFields = []string{"properties", "required", "nullable"}

func checkObjectSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, objectFields); err != nil {
		return err
	}
	properties, err := objectProperties(ctx, n)
	if err != nil {
		return err
	}
	for _, key := range []string{"required", "nullable"} {
		names, has, err := stringListField(ctx, n, key)
		if err != nil {
			return err
		}
		if !has {
			continue
		}
		for _, name := range names {
			if _, ok := properties[name]; !ok {
				return ctx.schemaErrf("%s field %q is not defined in properties", key, name)
			}
		}
	}
	for _, name := range sortedKeys(properties) {
		child := ctx.withPath("properties").withPath(name)
		if err := checkSchema(child, properties[name]); err != nil {
			return err
		}
	}
	return nil
}

// objectProperties reads the optional properties map, converting each
// entry to a Node.
func objectProperties(ctx valContext, n Node) (map[string]Node, error) {
	raw, ok := n["properties"]
	if !ok {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, ctx.schemaErrf("\"properties\" must be an object")
	}
	out := make(map[string]Node, len(m))
	for name, v := range m {
		child, ok := v.(map[string]any)
		if !ok {
			return nil, ctx.schemaErrf("property %q must be an object", name)
		}
		out[name] = Node(child)
	}
	return out, nil
}

// checkObjectData validates a data object: every required name must be
// present, null values are only allowed for nullable properties, and
// every key shared between data and properties is validated recursively.
// Keys absent from properties are accepted; object schemas are open.
func checkObjectData(ctx valContext, v any, n Node) error {
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
	nullable, _, err := stringListField(ctx, n, "nullable")
	if err != nil {
		return err
	}
	for _, name := range sortedKeys(m) {
		schema, ok := properties[name]
		if !ok {
			continue
		}
		child := ctx.withPath(name)
		if m[name] == nil {
			if containsString(nullable, name) {
				continue
			}
			return child.dataErrf("cannot be null")
		}
		if err := checkData(child, m[name], schema); err != nil {
			return err
		}
	}
	return nil
}
