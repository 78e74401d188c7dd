// Package trimdecode trims whitespace from string values while they are
// decoded, and optionally drops the ones left empty.
//
// Use the field types on structs decoded with encoding/json or
// gopkg.in/yaml.v3:
//
//	type Signup struct {
//	    Name     trimdecode.String                        `json:"name"`
//	    Nickname trimdecode.OptionalString                `json:"nickname,omitzero"`
//	    Tags     trimdecode.HashSet[trimdecode.DropEmpty] `json:"tags"`
//	    Steps    trimdecode.Slice[trimdecode.KeepEmpty]   `json:"steps"`
//	}
//
// or call the decode functions directly from a custom unmarshaler:
//
//	tags, err := trimdecode.DecodeSortedSetNonEmpty(trimdecode.JSON(raw))
//
// [UnmarshalAndValidate], [DecodeAndValidate] and [UnmarshalYAMLAndValidate]
// additionally trim plain string fields by struct tag (see
// [transform.Struct]), run [Normalizer] hooks and ozzo-validation.
//
// Sub-packages:
//   - transform: the format-agnostic trimming and container rebuild core
//   - openapi: OpenAPI documents for endpoints using these types
//   - cmd/trimdoc: command line normalizer for JSON and YAML documents
package trimdecode
