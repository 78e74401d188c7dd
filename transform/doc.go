// Package transform provides the whitespace normalization core used at
// decode time: trimming single strings, collapsing blank optionals to
// absent, and rebuilding string collections of any container kind from a
// trimmed (and optionally filtered) sequence.
//
// Nothing here knows about a serialization format. The root package binds
// these functions to encoding/json and gopkg.in/yaml.v3; [Struct] and
// [Document] apply them to already decoded values.
package transform
