package lexema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// decodeDocument decodes a raw lexicon document into a JSON value tree.
// Numbers are preserved as json.Number, duplicate object keys are rejected
// anywhere in the tree, and the source order of the top-level "defs" object
// is captured so Validate can report definitions in authoring order.
func decodeDocument(data []byte) (map[string]any, []string, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &docDecoder{dec: dec}

	tok, err := d.next()
	if err != nil {
		return nil, nil, invalidSchemaf("document is not valid JSON: %v", err)
	}
	delim, ok := tok.(gojson.Delim)
	if !ok || delim != '{' {
		return nil, nil, invalidSchemaf("document must be a JSON object")
	}
	root, _, err := d.object("")
	if err != nil {
		return nil, nil, err
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, invalidSchemaf("unexpected trailing data after document")
	}
	return root, d.defsOrder, nil
}

type docDecoder struct {
	dec       *gojson.Decoder
	defsOrder []string
}

func (d *docDecoder) next() (gojson.Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of document")
		}
		return nil, err
	}
	return tok, nil
}

// object consumes tokens up to the matching '}' and returns the decoded
// map together with its key order. The opening '{' must already have been
// consumed by the caller.
func (d *docDecoder) object(path string) (map[string]any, []string, error) {
	m := make(map[string]any)
	var keys []string
	for {
		tok, err := d.next()
		if err != nil {
			return nil, nil, invalidSchemaf("document is not valid JSON: %v", err)
		}
		if delim, ok := tok.(gojson.Delim); ok {
			if delim == '}' {
				return m, keys, nil
			}
			return nil, nil, invalidSchemaf("unexpected %q at %s", delim.String(), displayPath(path))
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, invalidSchemaf("object key at %s is not a string", displayPath(path))
		}
		if _, dup := m[key]; dup {
			return nil, nil, invalidSchemaf("duplicate key %q at %s", key, displayPath(path))
		}
		val, err := d.value(joinPath(path, key))
		if err != nil {
			return nil, nil, err
		}
		m[key] = val
		keys = append(keys, key)
	}
}

func (d *docDecoder) array(path string) ([]any, error) {
	out := []any{}
	for i := 0; ; i++ {
		tok, err := d.next()
		if err != nil {
			return nil, invalidSchemaf("document is not valid JSON: %v", err)
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == ']' {
			return out, nil
		}
		v, err := d.valueFrom(tok, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func (d *docDecoder) value(path string) (any, error) {
	tok, err := d.next()
	if err != nil {
		return nil, invalidSchemaf("document is not valid JSON: %v", err)
	}
	return d.valueFrom(tok, path)
}

func (d *docDecoder) valueFrom(tok gojson.Token, path string) (any, error) {
	switch v := tok.(type) {
	case gojson.Delim:
		switch v {
		case '{':
			m, keys, err := d.object(path)
			if err != nil {
				return nil, err
			}
			if path == "defs" {
				d.defsOrder = keys
			}
			return m, nil
		case '[':
			return d.array(path)
		}
		return nil, invalidSchemaf("unexpected %q at %s", v.String(), displayPath(path))
	case string:
		return v, nil
	case bool:
		return v, nil
	case gojson.Number:
		return json.Number(string(v)), nil
	case nil:
		return nil, nil
	default:
		return nil, invalidSchemaf("unexpected token at %s", displayPath(path))
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

func displayPath(path string) string {
	if path == "" {
		return "document root"
	}
	return path
}
