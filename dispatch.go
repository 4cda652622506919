package lexema

// checkSchema routes a schema node to its variant's shape validator based
// on the "type" tag. Both a missing and an unrecognized tag are schema
// errors.
func checkSchema(ctx valContext, n Node) error {
	ctx.depth++
	if ctx.tooDeep() {
		return ctx.schemaErrf("schema nesting exceeds maximum depth %d", ctx.maxDepth)
	}
	tag, ok := n.Type()
	if !ok {
		if n.has("type") {
			return ctx.schemaErrf("\"type\" must be a string")
		}
		return ctx.schemaErrf("missing \"type\" field")
	}
	switch tag {
	case "string":
		return checkStringSchema(ctx, n)
	case "integer":
		return checkIntegerSchema(ctx, n)
	case "boolean":
		return checkBooleanSchema(ctx, n)
	case "null":
		return checkNullSchema(ctx, n)
	case "bytes":
		return checkBytesSchema(ctx, n)
	case "blob":
		return checkBlobSchema(ctx, n)
	case "cid-link":
		return checkCIDLinkSchema(ctx, n)
	case "token":
		return checkTokenSchema(ctx, n)
	case "unknown":
		return checkUnknownSchema(ctx, n)
	case "object":
		return checkObjectSchema(ctx, n)
	case "array":
		return checkArraySchema(ctx, n)
	case "union":
		return checkUnionSchema(ctx, n)
	case "ref":
		return checkRefSchema(ctx, n)
	case "record":
		return checkRecordSchema(ctx, n)
	case "params":
		return checkParamsSchema(ctx, n)
	case "query":
		return checkQuerySchema(ctx, n)
	case "procedure":
		return checkProcedureSchema(ctx, n)
	case "subscription":
		return checkSubscriptionSchema(ctx, n)
	default:
		return ctx.schemaErrf("unknown type %q", tag)
	}
}

// checkData routes a data value to its schema variant's data validator.
// This is also the function injected into the context as the dataCheck
// handle, so ref and union validators can re-enter data checking on a
// resolved target without a direct call cycle.
func checkData(ctx valContext, v any, n Node) error {
	ctx.depth++
	if ctx.tooDeep() {
		return ctx.dataErrf("value nesting exceeds maximum depth %d", ctx.maxDepth)
	}
	tag, ok := n.Type()
	if !ok {
		if n.has("type") {
			return ctx.schemaErrf("\"type\" must be a string")
		}
		return ctx.schemaErrf("missing \"type\" field")
	}
	switch tag {
	case "string":
		return checkStringData(ctx, v, n)
	case "integer":
		return checkIntegerData(ctx, v, n)
	case "boolean":
		return checkBooleanData(ctx, v, n)
	case "null":
		return checkNullData(ctx, v)
	case "bytes":
		return checkBytesData(ctx, v, n)
	case "blob":
		return checkBlobData(ctx, v, n)
	case "cid-link":
		return checkCIDLinkData(ctx, v)
	case "token":
		return checkTokenData(ctx, v)
	case "unknown":
		return checkUnknownData(ctx, v)
	case "object":
		return checkObjectData(ctx, v, n)
	case "array":
		return checkArrayData(ctx, v, n)
	case "union":
		return checkUnionData(ctx, v, n)
	case "ref":
		return checkRefData(ctx, v, n)
	case "record":
		return checkRecordData(ctx, v, n)
	case "params":
		return checkParamsData(ctx, v, n)
	case "query", "procedure", "subscription":
		return ctx.schemaErrf("type %q does not validate data directly", tag)
	default:
		return ctx.schemaErrf("unknown type %q", tag)
	}
}
