package lexema

import (
	"github.com/rivo/uniseg"

	"github.com/reoring/lexema/format"
)

var stringFields = []string{
	"format", "minLength", "maxLength", "minGraphemes", "maxGraphemes",
	"enum", "knownValues", "const", "default",
}

func checkStringSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, stringFields); err != nil {
		return err
	}
	if n.has("format") {
		name, ok := n.str("format")
		if !ok {
			return ctx.schemaErrf("\"format\" must be a string")
		}
		if !format.Known(name) {
			return ctx.schemaErrf("unknown format %q", name)
		}
	}
	if err := checkBoundPair(ctx, n, "minLength", "maxLength", true); err != nil {
		return err
	}
	if err := checkBoundPair(ctx, n, "minGraphemes", "maxGraphemes", true); err != nil {
		return err
	}
	if _, _, err := stringListField(ctx, n, "enum"); err != nil {
		return err
	}
	if _, _, err := stringListField(ctx, n, "knownValues"); err != nil {
		return err
	}
	for _, key := range []string{"const", "default"} {
		if n.has(key) {
			if _, ok := n.str(key); !ok {
				return ctx.schemaErrf("%q must be a string", key)
			}
		}
	}
	return checkConstDefaultExclusive(ctx, n)
}

func checkStringData(ctx valContext, v any, n Node) error {
	s, ok := v.(string)
	if !ok {
		return ctx.dataErrf("expected string, got %s", jsonTypeName(v))
	}
	if want, ok := n.str("const"); ok && s != want {
		return ctx.dataErrf("value must be %q", want)
	}
	minL, hasMinL, err := intField(ctx, n, "minLength")
	if err != nil {
		return err
	}
	if hasMinL && int64(len(s)) < minL {
		return ctx.dataErrf("byte length %d is less than minLength %d", len(s), minL)
	}
	maxL, hasMaxL, err := intField(ctx, n, "maxLength")
	if err != nil {
		return err
	}
	if hasMaxL && int64(len(s)) > maxL {
		return ctx.dataErrf("byte length %d exceeds maxLength %d", len(s), maxL)
	}
	if n.has("minGraphemes") || n.has("maxGraphemes") {
		count := int64(uniseg.GraphemeClusterCount(s))
		minG, hasMinG, err := intField(ctx, n, "minGraphemes")
		if err != nil {
			return err
		}
		if hasMinG && count < minG {
			return ctx.dataErrf("grapheme count %d is less than minGraphemes %d", count, minG)
		}
		maxG, hasMaxG, err := intField(ctx, n, "maxGraphemes")
		if err != nil {
			return err
		}
		if hasMaxG && count > maxG {
			return ctx.dataErrf("grapheme count %d exceeds maxGraphemes %d", count, maxG)
		}
	}
	if name, ok := n.str("format"); ok {
		if err := format.Validate(s, format.Format(name)); err != nil {
			return ctx.dataErrf("invalid %s: %v", name, err)
		}
	}
	enum, hasEnum, err := stringListField(ctx, n, "enum")
	if err != nil {
		return err
	}
	if hasEnum && !containsString(enum, s) {
		return ctx.dataErrf("value %q is not in enum", s)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
