package lexema

// baseFields are accepted on every schema node regardless of variant.
var baseFields = []string{"type", "description"}

// checkAllowedFields rejects any field outside the variant's allow-list.
// Keys are visited in lexical order so the first error is deterministic.
func checkAllowedFields(ctx valContext, n Node, allowed []string) error {
	for _, key := range sortedKeys(n) {
		if fieldAllowed(key, allowed) {
			continue
		}
		return ctx.schemaErrf("unexpected field %q", key)
	}
	return nil
}

func fieldAllowed(key string, allowed []string) bool {
	for _, a := range baseFields {
		if key == a {
			return true
		}
	}
	for _, a := range allowed {
		if key == a {
			return true
		}
	}
	return false
}

// intField reads an optional integer schema field. present reports whether
// the field exists; a present non-integer value is a schema error.
func intField(ctx valContext, n Node, key string) (v int64, present bool, err error) {
	raw, ok := n[key]
	if !ok {
		return 0, false, nil
	}
	i, ok := asInt(raw)
	if !ok {
		return 0, false, ctx.schemaErrf("%q must be an integer", key)
	}
	return i, true, nil
}

// checkBoundPair validates an optional min/max field pair: both integers,
// optionally non-negative, and min must not exceed max when both are set.
func checkBoundPair(ctx valContext, n Node, minKey, maxKey string, nonNegative bool) error {
	minV, hasMin, err := intField(ctx, n, minKey)
	if err != nil {
		return err
	}
	maxV, hasMax, err := intField(ctx, n, maxKey)
	if err != nil {
		return err
	}
	if nonNegative {
		if hasMin && minV < 0 {
			return ctx.schemaErrf("%q must not be negative", minKey)
		}
		if hasMax && maxV < 0 {
			return ctx.schemaErrf("%q must not be negative", maxKey)
		}
	}
	if hasMin && hasMax && minV > maxV {
		return ctx.schemaErrf("%q cannot exceed %q", minKey, maxKey)
	}
	return nil
}

// stringListField reads an optional field that must be an array of
// strings (enum, knownValues, required, nullable).
func stringListField(ctx valContext, n Node, key string) ([]string, bool, error) {
	raw, ok := n[key]
	if !ok {
		return nil, false, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false, ctx.schemaErrf("%q must be an array of strings", key)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false, ctx.schemaErrf("%q must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, true, nil
}

// intListField reads an optional field that must be an array of integers.
func intListField(ctx valContext, n Node, key string) ([]int64, bool, error) {
	raw, ok := n[key]
	if !ok {
		return nil, false, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false, ctx.schemaErrf("%q must be an array of integers", key)
	}
	out := make([]int64, 0, len(list))
	for _, item := range list {
		i, ok := asInt(item)
		if !ok {
			return nil, false, ctx.schemaErrf("%q must be an array of integers", key)
		}
		out = append(out, i)
	}
	return out, true, nil
}

// checkConstDefaultExclusive enforces that const and default never appear
// together on one node.
func checkConstDefaultExclusive(ctx valContext, n Node) error {
	if n.has("const") && n.has("default") {
		return ctx.schemaErrf("\"const\" and \"default\" are mutually exclusive")
	}
	return nil
}
