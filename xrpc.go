package lexema

import (
	"strings"
)

var (
	queryFields        = []string{"parameters", "output", "errors"}
	procedureFields    = []string{"parameters", "input", "output", "errors"}
	subscriptionFields = []string{"parameters", "message", "errors"}

	bodyFields    = []string{"description", "encoding", "schema"}
	messageFields = []string{"description", "schema"}

	// bodySchemaTypes are the node types a body schema may carry.
	bodySchemaTypes = []string{"object", "ref", "union"}
)

func checkQuerySchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, queryFields); err != nil {
		return err
	}
	if err := checkParametersField(ctx, n); err != nil {
		return err
	}
	if err := checkBodyField(ctx, n, "output"); err != nil {
		return err
	}
	return checkErrorsField(ctx, n)
}

func checkProcedureSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, procedureFields); err != nil {
		return err
	}
	if err := checkParametersField(ctx, n); err != nil {
		return err
	}
	if err := checkBodyField(ctx, n, "input"); err != nil {
		return err
	}
	if err := checkBodyField(ctx, n, "output"); err != nil {
		return err
	}
	return checkErrorsField(ctx, n)
}

func checkSubscriptionSchema(ctx valContext, n Node) error {
	if err := checkAllowedFields(ctx, n, subscriptionFields); err != nil {
		return err
	}
	if err := checkParametersField(ctx, n); err != nil {
		return err
	}
	if err := checkMessageField(ctx, n); err != nil {
		return err
	}
	return checkErrorsField(ctx, n)
}

func checkParametersField(ctx valContext, n Node) error {
	if !n.has("parameters") {
		return nil
	}
	params, ok := n.child("parameters")
	if !ok {
		return ctx.schemaErrf("\"parameters\" must be an object")
	}
	child := ctx.withPath("parameters")
	if tag, _ := params.Type(); tag != "params" {
		return child.schemaErrf("\"parameters\" must have type \"params\"")
	}
	return checkParamsSchema(child, params)
}

// checkBodyField validates an input/output body wrapper: a required
// non-empty encoding plus an optional object/ref/union schema.
func checkBodyField(ctx valContext, n Node, key string) error {
	if !n.has(key) {
		return nil
	}
	body, ok := n.child(key)
	if !ok {
		return ctx.schemaErrf("%q must be an object", key)
	}
	child := ctx.withPath(key)
	if err := checkAllowedFields(child, body, bodyFields); err != nil {
		return err
	}
	encoding, ok := body.str("encoding")
	if !ok {
		if body.has("encoding") {
			return child.schemaErrf("\"encoding\" must be a string")
		}
		return child.schemaErrf("missing \"encoding\"")
	}
	if encoding == "" {
		return child.schemaErrf("\"encoding\" must not be empty")
	}
	return checkBodySchemaField(child, body, bodySchemaTypes)
}

// checkMessageField validates a subscription message wrapper. Message
// schemas must be unions so that event streams stay extensible.
func checkMessageField(ctx valContext, n Node) error {
	if !n.has("message") {
		return nil
	}
	message, ok := n.child("message")
	if !ok {
		return ctx.schemaErrf("\"message\" must be an object")
	}
	child := ctx.withPath("message")
	if err := checkAllowedFields(child, message, messageFields); err != nil {
		return err
	}
	if !message.has("schema") {
		return child.schemaErrf("missing \"schema\"")
	}
	return checkBodySchemaField(child, message, []string{"union"})
}

func checkBodySchemaField(ctx valContext, body Node, allowedTypes []string) error {
	if !body.has("schema") {
		return nil
	}
	schema, ok := body.child("schema")
	if !ok {
		return ctx.schemaErrf("\"schema\" must be an object")
	}
	child := ctx.withPath("schema")
	tag, _ := schema.Type()
	if !containsString(allowedTypes, tag) {
		return child.schemaErrf("schema must be one of: %s", strings.Join(allowedTypes, ", "))
	}
	return checkSchema(child, schema)
}

func checkErrorsField(ctx valContext, n Node) error {
	if !n.has("errors") {
		return nil
	}
	if _, ok := n.list("errors"); !ok {
		return ctx.schemaErrf("\"errors\" must be an array")
	}
	return nil
}

// checkBodyData validates a request/response body value against a body
// wrapper's schema. A body with no schema, or an absent body definition,
// accepts anything.
func checkBodyData(ctx valContext, v any, body Node) error {
	if body == nil {
		return nil
	}
	schema, ok := body.child("schema")
	if !ok {
		return nil
	}
	return checkData(ctx, v, schema)
}
