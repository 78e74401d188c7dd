package trimdecode

import (
	"context"
	"reflect"
)

// Normalizer is implemented by types that need more normalization than
// trimming after unmarshaling. It runs after trim tags are applied, so it
// sees trimmed values. Top level is called first, then nested structs
// depth-first.
type Normalizer interface {
	Normalize()
}

// ContextNormalizer is like Normalizer but receives a context.
type ContextNormalizer interface {
	Normalize(context.Context)
}

func normalizeRecursive(ctx context.Context, a any) {
	if a == nil {
		return
	}
	callNormalize(ctx, a)
	rv := reflect.ValueOf(a)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		walkNormalize(ctx, rv)
	}
}

func callNormalize(ctx context.Context, v any) {
	switch n := v.(type) {
	case ContextNormalizer:
		n.Normalize(ctx)
	case Normalizer:
		n.Normalize()
	}
}

// normalizeValue calls Normalize on v and descends into it when v is a
// struct or a non-nil pointer to one.
func normalizeValue(ctx context.Context, v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if v.CanAddr() {
			callNormalize(ctx, v.Addr().Interface())
		}
		walkNormalize(ctx, v)
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		callNormalize(ctx, v.Interface())
		if v.Elem().Kind() == reflect.Struct {
			walkNormalize(ctx, v.Elem())
		}
	}
}

func walkNormalize(ctx context.Context, rv reflect.Value) {
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		field := rv.Field(i)
		switch field.Kind() {
		case reflect.Struct, reflect.Ptr:
			normalizeValue(ctx, field)
		case reflect.Slice:
			for j := range field.Len() {
				normalizeValue(ctx, field.Index(j))
			}
		case reflect.Map:
			if field.Type().Elem().Kind() != reflect.Struct {
				continue
			}
			for _, key := range field.MapKeys() {
				// Map values aren't addressable; copy, normalize, put back.
				cp := reflect.New(field.Type().Elem())
				cp.Elem().Set(field.MapIndex(key))
				normalizeValue(ctx, cp)
				field.SetMapIndex(key, cp.Elem())
			}
		}
	}
}
