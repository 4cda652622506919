package lexema

import (
	"encoding/base64"
	"strings"

	"github.com/reoring/lexema/format"
)

var bytesFields = []string{"minLength", "maxLength"}

func checkBytesSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, bytesFields); err != nil {
		return err
	}
	return checkBoundPair(ctx, n, "minLength", "maxLength", true)
}

// checkBytesData expects the closed form { "$bytes": <base64> } with no
// other keys, and checks the decoded length against the bounds.
func checkBytesData(ctx valContext, v any, n Node) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ctx.dataErrf("expected bytes object, got %s", jsonTypeName(v))
	}
	raw, ok := m["$bytes"]
	if !ok {
		return ctx.dataErrf("bytes object is missing \"$bytes\"")
	}
	if len(m) != 1 {
		return ctx.dataErrf("bytes object must contain only \"$bytes\"")
	}
	s, ok := raw.(string)
	if !ok {
		return ctx.dataErrf("\"$bytes\" must be a base64 string")
	}
	decoded, err := decodeBase64(s)
	if err != nil {
		return ctx.dataErrf("\"$bytes\" is not valid base64: %v", err)
	}
	minV, hasMin, err := intField(ctx, n, "minLength")
	if err != nil {
		return err
	}
	if hasMin && int64(len(decoded)) < minV {
		return ctx.dataErrf("decoded length %d is less than minLength %d", len(decoded), minV)
	}
	maxV, hasMax, err := intField(ctx, n, "maxLength")
	if err != nil {
		return err
	}
	if hasMax && int64(len(decoded)) > maxV {
		return ctx.dataErrf("decoded length %d exceeds maxLength %d", len(decoded), maxV)
	}
	return nil
}

// decodeBase64 accepts the unpadded standard alphabet used on the wire,
// falling back to padded input.
func decodeBase64(s string) ([]byte, error) {
	if strings.ContainsRune(s, '=') {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}

func checkCIDLinkSchema(ctx valContext, n Node) error {
	return checkAllowedFields(ctx, n, nil)
}

// checkCIDLinkData expects the closed form { "$link": <cid> }.
func checkCIDLinkData(ctx valContext, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ctx.dataErrf("expected cid-link object, got %s", jsonTypeName(v))
	}
	raw, ok := m["$link"]
	if !ok {
		return ctx.dataErrf("cid-link object is missing \"$link\"")
	}
	if len(m) != 1 {
		return ctx.dataErrf("cid-link object must contain only \"$link\"")
	}
	s, ok := raw.(string)
	if !ok {
		return ctx.dataErrf("\"$link\" must be a string")
	}
	if err := format.ValidateCID(s); err != nil {
		return ctx.dataErrf("invalid \"$link\": %v", err)
	}
	return nil
}
