package lexema_test

import (
	"strings"
	"testing"

	lexema "github.com/reoring/lexema"
)

func TestParseDocument_DefsFollowSourceOrder(t *testing.T) {
	jsb := []byte(`{
		"lexicon": 1,
		"id": "com.example.thing",
		"defs": {
			"zeta": {"type": "token"},
			"alpha": {"type": "token"},
			"main": {"type": "token"}
		}
	}`)
	doc, err := lexema.ParseDocument(jsb)
	if err != nil {
		t.Fatalf("expected parse to succeed, got: %v", err)
	}
	if doc.ID != "com.example.thing" {
		t.Fatalf("expected id com.example.thing, got: %s", doc.ID)
	}
	got := doc.Defs()
	want := []string{"zeta", "alpha", "main"}
	if len(got) != len(want) {
		t.Fatalf("expected %d defs, got: %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected defs order %v, got: %v", want, got)
		}
	}
	if _, ok := doc.Def("alpha"); !ok {
		t.Fatalf("expected alpha definition to be present")
	}
	if _, ok := doc.Def("nope"); ok {
		t.Fatalf("expected nope definition to be absent")
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"not_json", `not json`, "document is not valid JSON"},
		{"array_root", `[1,2]`, "document must be a JSON object"},
		{"trailing", `{"id":"com.example.a","defs":{}} extra`, "unexpected trailing data"},
		{"missing_id", `{"defs":{}}`, `document has no "id" field`},
		{"id_not_string", `{"id":1,"defs":{}}`, `document "id" must be a string`},
		{"id_not_nsid", `{"id":"onesegment","defs":{}}`, "is not a valid NSID"},
		{"bad_version", `{"id":"com.example.a","lexicon":2,"defs":{}}`, `"lexicon" version must be 1`},
		{"missing_defs", `{"id":"com.example.a"}`, `document has no "defs" field`},
		{"defs_not_object", `{"id":"com.example.a","defs":[]}`, `"defs" must be an object`},
		{"def_not_object", `{"id":"com.example.a","defs":{"main":1}}`, `definition "main" must be an object`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lexema.ParseDocument([]byte(tc.json))
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

func TestParseDocument_DuplicateKey(t *testing.T) {
	jsb := []byte(`{"id":"com.example.a","defs":{"main":{"type":"token"},"main":{"type":"token"}}}`)
	_, err := lexema.ParseDocument(jsb)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	if !strings.Contains(err.Error(), `duplicate key "main" at defs`) {
		t.Fatalf("expected duplicate key message, got: %v", err)
	}
}

func TestParseDocument_DuplicateKeyNested(t *testing.T) {
	jsb := []byte(`{"id":"com.example.a","defs":{"main":{"type":"token","type":"string"}}}`)
	_, err := lexema.ParseDocument(jsb)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	if !strings.Contains(err.Error(), `duplicate key "type" at defs.main`) {
		t.Fatalf("expected nested duplicate key message, got: %v", err)
	}
}

func TestNewDocument_MainFirstOrder(t *testing.T) {
	doc, err := lexema.NewDocument(map[string]any{
		"id": "com.example.thing",
		"defs": map[string]any{
			"zeta":  map[string]any{"type": "token"},
			"alpha": map[string]any{"type": "token"},
			"main":  map[string]any{"type": "token"},
		},
	})
	if err != nil {
		t.Fatalf("expected NewDocument to succeed, got: %v", err)
	}
	got := doc.Defs()
	want := []string{"main", "alpha", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected defs order %v, got: %v", want, got)
		}
	}
}

func TestParseDocumentYAML(t *testing.T) {
	src := []byte(`
id: com.example.thing
lexicon: 1
defs:
  main:
    type: record
    key: tid
    record:
      type: object
      properties:
        title:
          type: string
          maxLength: 100
`)
	doc, err := lexema.ParseDocumentYAML(src)
	if err != nil {
		t.Fatalf("expected YAML parse to succeed, got: %v", err)
	}
	c := lexema.NewCatalog()
	if err := c.Add(doc); err != nil {
		t.Fatalf("expected add to succeed, got: %v", err)
	}
	if report := c.Validate(); !report.OK() {
		t.Fatalf("expected schema to validate, got: %v", report.Messages())
	}
	err = c.ValidateRecord("com.example.thing", map[string]any{"title": strings.Repeat("x", 200)})
	if !lexema.IsDataValidation(err) {
		t.Fatalf("expected DataValidation through a YAML-built schema, got: %v", err)
	}
}

func TestParseDocumentYAML_Malformed(t *testing.T) {
	if _, err := lexema.ParseDocumentYAML([]byte("[unclosed")); err == nil {
		t.Fatalf("expected error for broken YAML")
	}
	_, err := lexema.ParseDocumentYAML([]byte("- just\n- a list\n"))
	if err == nil || !strings.Contains(err.Error(), "must be a YAML mapping") {
		t.Fatalf("expected mapping error, got: %v", err)
	}
}
