package transform_test

import (
	"testing"

	"github.com/Gobd/trimdecode/transform"
	"github.com/stretchr/testify/assert"
)

func TestDocument(t *testing.T) {
	doc := map[string]any{
		"name":  "  Ada ",
		"blank": "   ",
		"n":     1.5,
		"ok":    true,
		"none":  nil,
		"tags":  []any{"   ", "foo", "b ar", "hello ", "  rust", 3},
		"nested": map[string]any{
			"city": " Paris ",
			"zip":  " ",
		},
		"yaml": map[any]any{
			1:   " one ",
			"k": "",
		},
	}

	keep := transform.Document(doc, transform.KeepEmpty)
	assert.Equal(t, map[string]any{
		"name":   "Ada",
		"blank":  "",
		"n":      1.5,
		"ok":     true,
		"none":   nil,
		"tags":   []any{"", "foo", "b ar", "hello", "rust", 3},
		"nested": map[string]any{"city": "Paris", "zip": ""},
		"yaml":   map[any]any{1: "one", "k": ""},
	}, keep)

	drop := transform.Document(doc, transform.DropEmpty)
	assert.Equal(t, map[string]any{
		"name":   "Ada",
		"n":      1.5,
		"ok":     true,
		"none":   nil,
		"tags":   []any{"foo", "b ar", "hello", "rust", 3},
		"nested": map[string]any{"city": "Paris"},
		"yaml":   map[any]any{1: "one"},
	}, drop)

	// Input is left as it was.
	assert.Equal(t, "  Ada ", doc["name"])
	assert.Equal(t, "   ", doc["tags"].([]any)[0])

	assert.Equal(t, drop, transform.Document(drop, transform.DropEmpty))
}

func TestDocument_Scalars(t *testing.T) {
	assert.Equal(t, "x", transform.Document(" x ", transform.DropEmpty))
	assert.Equal(t, "", transform.Document(" ", transform.DropEmpty))
	assert.Equal(t, 42, transform.Document(42, transform.KeepEmpty))
	assert.Nil(t, transform.Document(nil, transform.KeepEmpty))
}
