package lexema

import (
	"strings"

	"github.com/reoring/lexema/format"
)

var blobFields = []string{"accept", "maxSize"}

func checkBlobSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, blobFields); err != nil {
		return err
	}
	accept, hasAccept, err := stringListField(ctx, n, "accept")
	if err != nil {
		return err
	}
	if hasAccept {
		for _, pattern := range accept {
			if !validAcceptPattern(pattern) {
				return ctx.schemaErrf("invalid accept pattern %q", pattern)
			}
		}
	}
	maxSize, hasMax, err := intField(ctx, n, "maxSize")
	if err != nil {
		return err
	}
	if hasMax && maxSize <= 0 {
		return ctx.schemaErrf("\"maxSize\" must be positive")
	}
	return nil
}

// validAcceptPattern accepts "type/subtype", "type/*" and "*/*". A
// wildcard must stand alone in its segment.
func validAcceptPattern(p string) bool {
	mediaType, subType, ok := strings.Cut(p, "/")
	if !ok || mediaType == "" || subType == "" {
		return false
	}
	if strings.Contains(subType, "/") {
		return false
	}
	if strings.ContainsRune(mediaType, '*') && mediaType != "*" {
		return false
	}
	if strings.ContainsRune(subType, '*') && subType != "*" {
		return false
	}
	if mediaType == "*" && subType != "*" {
		return false
	}
	return true
}

var blobDataFields = []string{"$type", "ref", "mimeType", "size"}

// checkBlobData expects the closed blob form:
//
//	{ "$type": "blob", "ref": {"$link": <raw cid>}, "mimeType": ..., "size": ... }
func checkBlobData(ctx valContext, v any, n Node) error {
	m, ok := v.(map[string]any)
	if !ok {
		return ctx.dataErrf("expected blob object, got %s", jsonTypeName(v))
	}
	for _, key := range sortedKeys(m) {
		if !containsString(blobDataFields, key) {
			return ctx.dataErrf("unexpected field %q in blob object", key)
		}
	}
	for _, key := range blobDataFields {
		if _, ok := m[key]; !ok {
			return ctx.dataErrf("blob object is missing %q", key)
		}
	}
	if t, _ := m["$type"].(string); t != "blob" {
		return ctx.dataErrf("blob object \"$type\" must be \"blob\"")
	}

	ref, ok := m["ref"].(map[string]any)
	if !ok {
		return ctx.dataErrf("blob \"ref\" must be an object")
	}
	link, ok := ref["$link"]
	if !ok || len(ref) != 1 {
		return ctx.dataErrf("blob \"ref\" must contain only \"$link\"")
	}
	linkStr, ok := link.(string)
	if !ok {
		return ctx.dataErrf("blob \"ref\" \"$link\" must be a string")
	}
	if err := format.ValidateRawCID(linkStr); err != nil {
		return ctx.dataErrf("invalid blob ref: %v", err)
	}

	mimeType, ok := m["mimeType"].(string)
	if !ok || mimeType == "" {
		return ctx.dataErrf("blob \"mimeType\" must be a non-empty string")
	}
	size, ok := asInt(m["size"])
	if !ok || size < 0 {
		return ctx.dataErrf("blob \"size\" must be a non-negative integer")
	}

	accept, hasAccept, err := stringListField(ctx, n, "accept")
	if err != nil {
		return err
	}
	if hasAccept && !mimeAccepted(mimeType, accept) {
		return ctx.dataErrf("mime type %q is not accepted", mimeType)
	}
	maxSize, hasMax, err := intField(ctx, n, "maxSize")
	if err != nil {
		return err
	}
	if hasMax && size > maxSize {
		return ctx.dataErrf("blob size %d exceeds maxSize %d", size, maxSize)
	}
	return nil
}

func mimeAccepted(mimeType string, patterns []string) bool {
	for _, p := range patterns {
		if p == "*/*" || p == mimeType {
			return true
		}
		if prefix, ok := strings.CutSuffix(p, "/*"); ok {
			if strings.HasPrefix(mimeType, prefix+"/") {
				return true
			}
		}
	}
	return false
}
