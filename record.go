package lexema

import (
	"strings"
)

var recordFields = []string{"key", "record"}

func checkRecordSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, recordFields); err != nil {
		return err
	}
	key, ok := n.str("key")
	if !ok {
		if n.has("key") {
			return ctx.schemaErrf("\"key\" must be a string")
		}
		return ctx.schemaErrf("missing \"key\"")
	}
	if !validRecordKeyType(key) {
		return ctx.schemaErrf("invalid record key type %q", key)
	}
	record, err := recordObjectNode(ctx, n)
	if err != nil {
		return err
	}
	return checkObjectSchema(ctx.withPath("record"), record)
}

func validRecordKeyType(key string) bool {
	switch key {
	case "tid", "any", "nsid":
		return true
	}
	literal, ok := strings.CutPrefix(key, "literal:")
	return ok && literal != ""
}

// recordObjectNode reads the required "record" field, which must itself
// be an object-typed schema node.
func recordObjectNode(ctx valContext, n Node) (Node, error) {
	record, ok := n.child("record")
	if !ok {
		if n.has("record") {
			return nil, ctx.schemaErrf("\"record\" must be an object")
		}
		return nil, ctx.schemaErrf("missing \"record\"")
	}
	if tag, _ := record.Type(); tag != "object" {
		return nil, ctx.schemaErrf("\"record\" must have type \"object\"")
	}
	return record, nil
}

// checkRecordData validates the value against the record's object schema.
func checkRecordData(ctx valContext, v any, n Node) error {
	record, err := recordObjectNode(ctx, n)
	if err != nil {
		return err
	}
	return checkObjectData(ctx, v, record)
}
