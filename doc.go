// File: lixenwraith/nestval/doc.go

// Package nestval reads values out of nested, dynamically shaped records
// (decoded JSON, YAML and TOML documents, string-keyed maps, structs) by a
// delimited path such as "server.tls.cert" or "my/nested/key".
//
// Features:
//   - Lookup over any string-keyed mapping, with intermediate sequences indexed by position
//   - Distinct Missing result for paths that cannot be followed, separate from stored nulls
//   - Argument validation with exact, type-tagged error messages
//   - Resolver bound to one root with typed getters and struct decoding
//   - Document parsing for TOML, JSON and YAML with format detection
//   - Lookup over raw JSON bytes without full decoding
//
// Quick Start:
//
//	root := map[string]any{
//	    "my": map[string]any{
//	        "nested": map[string]any{"key": "my nested value"},
//	    },
//	}
//
//	v, err := nestval.Lookup("my/nested/key", "/", root)
//	if err != nil {
//	    log.Fatal(err) // argument of the wrong type
//	}
//	if nestval.IsMissing(v) {
//	    // path could not be followed to completion
//	}
//
// Resolver:
//
//	r, err := nestval.NewBuilder().
//	    WithDocument(data, nestval.FormatYAML).
//	    WithRequired("server.port").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := r.Int64("server.port")
//
// Missing vs null:
// A key that is absent, or a value along the path that cannot be indexed,
// yields Missing. A key that is present and holds nil yields nil.
//
// Thread Safety:
// Lookup only reads its arguments. A built Resolver is immutable and may be
// shared between goroutines.
package nestval
