// Package lexema validates atproto lexicon schema documents and the data
// that claims to conform to them.
//
// It covers:
//
//   - Schema-shape validation: every definition in a document is checked
//     against its type variant's allowed fields and constraint rules.
//   - Data validation: record values are checked recursively against a
//     resolved schema, following refs and unions across documents.
//   - Reference resolution over a Catalog, with cycle detection for
//     reference chains.
//   - String format predicates (datetime, did, handle, nsid, cid, ...)
//     under the format subpackage.
//
// Design policy:
//   - Keep only public APIs in the root package; the format predicates live
//     under format/, and the CLI under cmd/lexema.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	report, err := lexema.Validate([]any{docA, docB})
//	err = lexema.ValidateRecord([]any{docA}, "com.example.post", record)
package lexema
