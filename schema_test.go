package lexema_test

import (
	"encoding/json"
	"strings"
	"testing"

	lexema "github.com/reoring/lexema"
)

func mustNode(t *testing.T, src string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("bad fixture %s: %v", src, err)
	}
	return v
}

func TestValidateNode_WellFormed(t *testing.T) {
	good := []string{
		`{"type":"string","format":"datetime","description":"when"}`,
		`{"type":"string","minLength":1,"maxLength":32,"minGraphemes":1,"maxGraphemes":8,"knownValues":["a"]}`,
		`{"type":"integer","minimum":-5,"maximum":5,"enum":[-5,0,5],"default":0}`,
		`{"type":"boolean","const":true}`,
		`{"type":"null"}`,
		`{"type":"bytes","minLength":0,"maxLength":1024}`,
		`{"type":"blob","accept":["image/*","*/*","video/mp4"],"maxSize":1000}`,
		`{"type":"cid-link"}`,
		`{"type":"token","description":"a marker"}`,
		`{"type":"unknown"}`,
		`{"type":"object","properties":{"a":{"type":"string"}},"required":["a"],"nullable":["a"]}`,
		`{"type":"array","items":{"type":"integer"},"minLength":0,"maxLength":10}`,
		`{"type":"union","refs":["#local","com.example.a","com.example.a#frag"]}`,
		`{"type":"ref","ref":"#anything"}`,
		`{"type":"record","key":"literal:self","record":{"type":"object"}}`,
		`{"type":"params","properties":{"q":{"type":"string"},"ids":{"type":"array","items":{"type":"integer"}}},"required":["q"]}`,
		`{"type":"query","parameters":{"type":"params","properties":{"q":{"type":"string"}}},"output":{"encoding":"application/json","schema":{"type":"object"}},"errors":[{"name":"NotFound"}]}`,
		`{"type":"procedure","input":{"encoding":"application/json","schema":{"type":"ref","ref":"#req"}},"output":{"encoding":"application/json"}}`,
		`{"type":"subscription","message":{"schema":{"type":"union","refs":["#event"]}}}`,
	}
	for _, src := range good {
		if err := lexema.ValidateNode(mustNode(t, src)); err != nil {
			t.Errorf("expected %s to validate, got: %v", src, err)
		}
	}
}

func TestValidateNode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"missing_type", `{}`, `missing "type" field`},
		{"type_not_string", `{"type":1}`, `"type" must be a string`},
		{"unknown_type", `{"type":"frobnicator"}`, `unknown type "frobnicator"`},

		{"string_unexpected_field", `{"type":"string","maximum":5}`, `unexpected field "maximum"`},
		{"string_unknown_format", `{"type":"string","format":"zipcode"}`, `unknown format "zipcode"`},
		{"string_format_not_string", `{"type":"string","format":5}`, `"format" must be a string`},
		{"string_length_pair", `{"type":"string","minLength":5,"maxLength":2}`, `"minLength" cannot exceed "maxLength"`},
		{"string_negative_bound", `{"type":"string","minLength":-1}`, `"minLength" must not be negative`},
		{"string_grapheme_pair", `{"type":"string","minGraphemes":9,"maxGraphemes":3}`, `"minGraphemes" cannot exceed "maxGraphemes"`},
		{"string_bound_not_integer", `{"type":"string","minLength":"5"}`, `"minLength" must be an integer`},
		{"string_enum_not_strings", `{"type":"string","enum":[1]}`, `"enum" must be an array of strings`},
		{"string_const_and_default", `{"type":"string","const":"a","default":"b"}`, `"const" and "default" are mutually exclusive`},
		{"string_const_not_string", `{"type":"string","const":1}`, `"const" must be a string`},

		{"integer_bound_pair", `{"type":"integer","minimum":10,"maximum":1}`, `"minimum" cannot exceed "maximum"`},
		{"integer_enum_not_integers", `{"type":"integer","enum":["a"]}`, `"enum" must be an array of integers`},
		{"integer_const_not_integer", `{"type":"integer","const":"x"}`, `"const" must be an integer`},
		{"boolean_const_not_boolean", `{"type":"boolean","const":"yes"}`, `"const" must be a boolean`},
		{"boolean_unexpected_field", `{"type":"boolean","minimum":1}`, `unexpected field "minimum"`},
		{"null_unexpected_field", `{"type":"null","const":1}`, `unexpected field "const"`},
		{"token_unexpected_field", `{"type":"token","maxLength":1}`, `unexpected field "maxLength"`},
		{"unknown_unexpected_field", `{"type":"unknown","properties":{}}`, `unexpected field "properties"`},
		{"bytes_length_pair", `{"type":"bytes","minLength":9,"maxLength":1}`, `"minLength" cannot exceed "maxLength"`},

		{"blob_accept_no_slash", `{"type":"blob","accept":["image"]}`, `invalid accept pattern "image"`},
		{"blob_accept_wildcard_type", `{"type":"blob","accept":["*/png"]}`, `invalid accept pattern "*/png"`},
		{"blob_accept_partial_wildcard", `{"type":"blob","accept":["im*ge/png"]}`, `invalid accept pattern "im*ge/png"`},
		{"blob_max_size_zero", `{"type":"blob","maxSize":0}`, `"maxSize" must be positive`},
		{"cid_link_unexpected_field", `{"type":"cid-link","maxSize":1}`, `unexpected field "maxSize"`},

		{"object_required_undefined", `{"type":"object","properties":{"a":{"type":"string"}},"required":["x"]}`, `required field "x" is not defined in properties`},
		{"object_nullable_undefined", `{"type":"object","properties":{"a":{"type":"string"}},"nullable":["y"]}`, `nullable field "y" is not defined in properties`},
		{"object_properties_not_object", `{"type":"object","properties":[]}`, `"properties" must be an object`},
		{"object_property_not_object", `{"type":"object","properties":{"a":1}}`, `property "a" must be an object`},
		{"object_nested_path", `{"type":"object","properties":{"count":{"type":"integer","minimum":5,"maximum":1}}}`, `properties.count: "minimum" cannot exceed "maximum"`},

		{"array_missing_items", `{"type":"array"}`, `missing "items"`},
		{"array_items_not_object", `{"type":"array","items":5}`, `"items" must be an object`},
		{"array_nested_path", `{"type":"array","items":{"type":"frobnicator"}}`, `items: unknown type "frobnicator"`},

		{"union_missing_refs", `{"type":"union"}`, `missing "refs"`},
		{"union_refs_not_list", `{"type":"union","refs":"x"}`, `"refs" must be an array of strings`},
		{"union_closed_not_boolean", `{"type":"union","refs":[],"closed":1}`, `"closed" must be a boolean`},
		{"union_closed_empty", `{"type":"union","refs":[],"closed":true}`, `closed union must declare at least one ref`},
		{"union_ref_two_hashes", `{"type":"union","refs":["a#b#c"]}`, `reference "a#b#c" has more than one "#"`},
		{"union_ref_empty_name", `{"type":"union","refs":["com.example.a#"]}`, `has an empty definition name`},
		{"union_ref_bad_nsid", `{"type":"union","refs":["notansid"]}`, `reference "notansid" is not a valid NSID`},

		{"ref_missing", `{"type":"ref"}`, `missing "ref"`},
		{"ref_not_string", `{"type":"ref","ref":1}`, `"ref" must be a string`},
		{"ref_empty", `{"type":"ref","ref":""}`, `reference must not be empty`},

		{"record_missing_key", `{"type":"record","record":{"type":"object"}}`, `missing "key"`},
		{"record_bad_key", `{"type":"record","key":"uuid","record":{"type":"object"}}`, `invalid record key type "uuid"`},
		{"record_empty_literal", `{"type":"record","key":"literal:","record":{"type":"object"}}`, `invalid record key type "literal:"`},
		{"record_missing_record", `{"type":"record","key":"tid"}`, `missing "record"`},
		{"record_not_object_typed", `{"type":"record","key":"tid","record":{"type":"string"}}`, `"record" must have type "object"`},

		{"params_nested_object", `{"type":"params","properties":{"filter":{"type":"object"}}}`, `properties.filter: type "object" is not allowed in params`},
		{"params_array_of_refs", `{"type":"params","properties":{"ids":{"type":"array","items":{"type":"ref","ref":"#x"}}}}`, `properties.ids.items: type "ref" is not allowed in params`},
		{"params_required_undefined", `{"type":"params","required":["q"],"properties":{}}`, `required field "q" is not defined in properties`},

		{"query_unexpected_input", `{"type":"query","input":{"encoding":"application/json"}}`, `unexpected field "input"`},
		{"parameters_wrong_type", `{"type":"query","parameters":{"type":"object"}}`, `parameters: "parameters" must have type "params"`},
		{"body_missing_encoding", `{"type":"query","output":{"schema":{"type":"object"}}}`, `output: missing "encoding"`},
		{"body_empty_encoding", `{"type":"procedure","input":{"encoding":""}}`, `input: "encoding" must not be empty`},
		{"body_unexpected_field", `{"type":"procedure","input":{"encoding":"x","maxSize":5}}`, `unexpected field "maxSize"`},
		{"body_schema_wrong_type", `{"type":"query","output":{"encoding":"application/json","schema":{"type":"array","items":{"type":"string"}}}}`, `output.schema: schema must be one of: object, ref, union`},
		{"message_schema_not_union", `{"type":"subscription","message":{"schema":{"type":"object"}}}`, `message.schema: schema must be one of: union`},
		{"message_missing_schema", `{"type":"subscription","message":{"description":"x"}}`, `message: missing "schema"`},
		{"errors_not_array", `{"type":"query","errors":{}}`, `"errors" must be an array`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := lexema.ValidateNode(mustNode(t, tc.json))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !lexema.IsInvalidSchema(err) {
				t.Fatalf("expected InvalidSchema, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected message containing %q, got: %v", tc.want, err)
			}
		})
	}
}

func TestValidateNode_UnknownTypeMessage(t *testing.T) {
	err := lexema.ValidateNode(map[string]any{"type": "frobnicator"})
	if err == nil || err.Error() != `Invalid lexicon schema: unknown type "frobnicator"` {
		t.Fatalf("expected the exact dispatcher message, got: %v", err)
	}
}

func TestSchema_LocalRefResolution(t *testing.T) {
	c := testCatalog(t, `{
		"id": "com.example.feed",
		"defs": {
			"main": {"type": "record", "key": "tid", "record": {"type": "object", "properties": {
				"item": {"type": "ref", "ref": "#post"}
			}}},
			"post": {"type": "object"}
		}
	}`)
	if report := c.Validate(); !report.OK() {
		t.Fatalf("expected local refs to resolve, got: %v", report.Messages())
	}
}

func TestSchema_RefToMissingDefinition(t *testing.T) {
	report, err := lexema.Validate([]any{[]byte(`{
		"id": "com.example.feed",
		"defs": {"main": {"type": "ref", "ref": "#nope"}}
	}`)})
	if err != nil {
		t.Fatalf("expected report, got: %v", err)
	}
	msgs := report.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "definition not found: com.example.feed#nope") {
		t.Fatalf("expected missing definition message, got: %v", msgs)
	}
}

func TestSchema_RefToMissingDocument(t *testing.T) {
	report, err := lexema.Validate([]any{[]byte(`{
		"id": "com.example.feed",
		"defs": {"main": {"type": "union", "refs": ["com.example.absent#view"]}}
	}`)})
	if err != nil {
		t.Fatalf("expected report, got: %v", err)
	}
	msgs := report.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Lexicon not found for collection: com.example.absent") {
		t.Fatalf("expected not-found message, got: %v", msgs)
	}
}

func TestSchema_CrossDocumentRefResolution(t *testing.T) {
	report, err := lexema.Validate([]any{
		[]byte(labelDefsDoc),
		[]byte(`{
			"id": "com.example.profile",
			"defs": {"main": {"type": "record", "key": "literal:self", "record": {"type": "object", "properties": {
				"label": {"type": "ref", "ref": "com.example.defs#label"}
			}}}}
		}`),
	})
	if err != nil {
		t.Fatalf("expected validation to run, got: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected cross-document refs to resolve, got: %v", report.Messages())
	}
}

func TestSchema_MaxDepth(t *testing.T) {
	doc := []byte(`{
		"id": "com.example.deep",
		"defs": {"main": {"type": "object", "properties": {
			"a": {"type": "object", "properties": {
				"b": {"type": "string"}
			}}
		}}}
	}`)

	report, err := lexema.Validate([]any{doc})
	if err != nil || !report.OK() {
		t.Fatalf("expected unbounded validation to pass, got: %v %v", err, report.Messages())
	}

	report, err = lexema.Validate([]any{doc}, lexema.Options{MaxDepth: 1})
	if err != nil {
		t.Fatalf("expected report, got: %v", err)
	}
	msgs := report.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "schema nesting exceeds maximum depth 1") {
		t.Fatalf("expected depth message, got: %v", msgs)
	}
}
