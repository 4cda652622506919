package lexema

var integerFields = []string{"minimum", "maximum", "enum", "const", "default"}

func checkIntegerSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, integerFields); err != nil {
		return err
	}
	if err := checkBoundPair(ctx, n, "minimum", "maximum", false); err != nil {
		return err
	}
	if _, _, err := intListField(ctx, n, "enum"); err != nil {
		return err
	}
	for _, key := range []string{"const", "default"} {
		if n.has(key) {
			if _, ok := asInt(n[key]); !ok {
				return ctx.schemaErrf("%q must be an integer", key)
			}
		}
	}
	return checkConstDefaultExclusive(ctx, n)
}

func checkIntegerData(ctx valContext, v any, n Node) error {
	i, ok := asInt(v)
	if !ok {
		return ctx.dataErrf("expected integer, got %s", jsonTypeName(v))
	}
	// A const mismatch wins over range and enum failures.
	if n.has("const") {
		want, ok := asInt(n["const"])
		if !ok {
			return ctx.schemaErrf("\"const\" must be an integer")
		}
		if i != want {
			return ctx.dataErrf("value must be %d", want)
		}
	}
	minV, hasMin, err := intField(ctx, n, "minimum")
	if err != nil {
		return err
	}
	if hasMin && i < minV {
		return ctx.dataErrf("value %d is less than minimum %d", i, minV)
	}
	maxV, hasMax, err := intField(ctx, n, "maximum")
	if err != nil {
		return err
	}
	if hasMax && i > maxV {
		return ctx.dataErrf("value %d exceeds maximum %d", i, maxV)
	}
	enum, hasEnum, err := intListField(ctx, n, "enum")
	if err != nil {
		return err
	}
	if hasEnum {
		found := false
		for _, e := range enum {
			if e == i {
				found = true
				break
			}
		}
		if !found {
			return ctx.dataErrf("value %d is not in enum", i)
		}
	}
	return nil
}

var booleanFields = []string{"const", "default"}

func checkBooleanSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, booleanFields); err != nil {
		return err
	}
	for _, key := range []string{"const", "default"} {
		if n.has(key) {
			if _, ok := n.boolField(key); !ok {
				return ctx.schemaErrf("%q must be a boolean", key)
			}
		}
	}
	return checkConstDefaultExclusive(ctx, n)
}

func checkBooleanData(ctx valContext, v any, n Node) error {
	b, ok := v.(bool)
	if !ok {
		return ctx.dataErrf("expected boolean, got %s", jsonTypeName(v))
	}
	if want, ok := n.boolField("const"); ok && b != want {
		return ctx.dataErrf("value must be %t", want)
	}
	return nil
}

func checkNullSchema(ctx valContext, n Node) error {
	return checkAllowedFields(ctx, n, nil)
}

func checkNullData(ctx valContext, v any) error {
	if v != nil {
		return ctx.dataErrf("expected null, got %s", jsonTypeName(v))
	}
	return nil
}

func checkTokenSchema(ctx valContext, n Node) error {
	return checkAllowedFields(ctx, n, nil)
}

// checkTokenData accepts any non-empty string. Matching the string
// against an expected token set is the caller's job, typically the union
// validator's.
func checkTokenData(ctx valContext, v any) error {
	s, ok := v.(string)
	if !ok {
		return ctx.dataErrf("expected token string, got %s", jsonTypeName(v))
	}
	if s == "" {
		return ctx.dataErrf("token must be a non-empty string")
	}
	return nil
}

func checkUnknownSchema(ctx valContext, n Node) error {
	return checkAllowedFields(ctx, n, nil)
}

// checkUnknownData accepts any object shape except the reserved $-object
// forms for bytes and blobs.
func checkUnknownData(ctx valContext, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ctx.dataErrf("expected object, got %s", jsonTypeName(v))
	}
	if _, ok := m["$bytes"]; ok {
		return ctx.dataErrf("bytes object is not allowed here")
	}
	if t, _ := m["$type"].(string); t == "blob" {
		return ctx.dataErrf("blob is not allowed here")
	}
	return nil
}
