package trimdecode

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/Gobd/trimdecode/transform"
)

const trimmedDescription = "surrounding whitespace is trimmed"

type shaper interface {
	shape() fieldShape
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value. The
// field types of this package are documented as what they decode from: a
// string, a nullable string or an array of strings (with uniqueItems for set
// kinds and non-empty items under [DropEmpty]). Plain string fields trimmed
// by the validate functions are described too, and default:"x" tags become
// schema defaults.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}

func schemaDoc(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if strings.Split(tag.Get("trim"), ",")[0] == "-" {
		return nil
	}
	def, hasDef := tag.Lookup("default")

	if sh, ok := reflect.New(t).Interface().(shaper); ok {
		*schema = *shapeSchema(sh.shape())
		if hasDef && !sh.shape().array {
			schema.Default = def
		}
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		appendDescription(schema, trimmedDescription)
		if hasDef {
			schema.Default = def
		}
	case reflect.Slice:
		if t.Elem().Kind() != reflect.String || schema.Items == nil || schema.Items.Value == nil {
			return nil
		}
		if strings.Split(tag.Get("trim"), ",")[0] == "omitempty" {
			schema.Items.Value.MinLength = 1
		}
	}
	return nil
}

func shapeSchema(sh fieldShape) *openapi3.Schema {
	item := openapi3.NewStringSchema()
	item.Description = trimmedDescription
	if !sh.array {
		item.Nullable = sh.nullable
		return item
	}
	if sh.policy == transform.DropEmpty {
		item.MinLength = 1
	}
	arr := openapi3.NewArraySchema()
	arr.Items = openapi3.NewSchemaRef("", item)
	arr.UniqueItems = sh.unique
	return arr
}

func appendDescription(schema *openapi3.Schema, desc string) {
	if strings.Contains(schema.Description, desc) {
		return
	}
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += desc
}
