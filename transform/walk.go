package transform

import (
	"iter"
	"reflect"
	"strings"
)

// Struct trims the string fields of the struct v points to, recursing into
// nested structs, pointers to structs, slices and map values.
//
//   - string: trimmed, blank stays "".
//   - *string: trimmed, blank collapses to nil.
//   - []string, map[string]string: elements or values trimmed.
//
// Field tags adjust this:
//
//	trim:"-"          leave the field alone
//	trim:"omitempty"  drop blank elements of a slice or blank map values
//	default:"x"       use x when a string is blank or a *string is nil
//	                  after trimming; a struct field implementing
//	                  [Defaulter] gets SetDefault(x)
//
// Pointee strings are replaced, not mutated in place, so values shared with
// the caller are left as they were.
func Struct(v any) {
	walk(reflect.ValueOf(v))
}

// Defaulter is implemented by optional field types that honor a
// default:"x" tag. SetDefault is only expected to change an absent value.
type Defaulter interface {
	SetDefault(def string)
}

type fieldOpts struct {
	policy Policy
	def    string
	hasDef bool
}

func optsFor(sf reflect.StructField) (fieldOpts, bool) {
	tag := strings.Split(sf.Tag.Get("trim"), ",")[0]
	if tag == "-" {
		return fieldOpts{}, false
	}
	o := fieldOpts{policy: KeepEmpty}
	if tag == "omitempty" {
		o.policy = DropEmpty
	}
	o.def, o.hasDef = sf.Tag.Lookup("default")
	return o, true
}

func walk(v reflect.Value) { //nolint:revive // reflection walker is inherently complex
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		o, ok := optsFor(t.Field(i))
		if !ok {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			s := Space(field.String())
			if s == "" && o.hasDef {
				s = o.def
			}
			field.SetString(s)
		case reflect.Struct:
			if d, ok := field.Addr().Interface().(Defaulter); ok && o.hasDef {
				d.SetDefault(o.def)
				continue
			}
			walk(field.Addr())
		case reflect.Pointer:
			elemType := field.Type().Elem()
			switch elemType.Kind() {
			case reflect.String:
				optionalField(field, o)
			case reflect.Struct:
				walk(field)
			}
		case reflect.Interface:
			// Concrete type unknown; leave it.
		case reflect.Slice:
			sliceField(field, o.policy)
		case reflect.Map:
			mapField(field, o.policy)
		}
	}
}

func optionalField(field reflect.Value, o fieldOpts) {
	var trimmed *string
	if !field.IsNil() {
		s := field.Elem().String()
		trimmed = Optional(&s)
	}
	if trimmed == nil && o.hasDef {
		trimmed = &o.def
	}
	if trimmed == nil {
		field.SetZero()
		return
	}
	nv := reflect.New(field.Type().Elem())
	nv.Elem().SetString(*trimmed)
	field.Set(nv)
}

func sliceField(field reflect.Value, p Policy) {
	if field.IsNil() {
		return
	}
	elemType := field.Type().Elem()
	switch elemType.Kind() {
	case reflect.String:
		out := reflect.MakeSlice(field.Type(), 0, field.Len())
		for s := range Trimmed(stringElems(field), p) {
			out = reflect.Append(out, reflect.ValueOf(s).Convert(elemType))
		}
		field.Set(out)
	case reflect.Struct:
		for j := range field.Len() {
			walk(field.Index(j).Addr())
		}
	case reflect.Pointer:
		if elemType.Elem().Kind() != reflect.Struct {
			return
		}
		for j := range field.Len() {
			walk(field.Index(j))
		}
	}
}

func mapField(field reflect.Value, p Policy) {
	if field.IsNil() {
		return
	}
	elemType := field.Type().Elem()
	for _, key := range field.MapKeys() {
		val := field.MapIndex(key)
		switch elemType.Kind() {
		case reflect.String:
			s := Space(val.String())
			if !p.keep(s) {
				field.SetMapIndex(key, reflect.Value{})
				continue
			}
			field.SetMapIndex(key, reflect.ValueOf(s).Convert(elemType))
		case reflect.Struct:
			// Map values aren't addressable; copy, walk, put back.
			cp := reflect.New(elemType).Elem()
			cp.Set(val)
			walk(cp.Addr())
			field.SetMapIndex(key, cp)
		}
	}
}

func stringElems(v reflect.Value) iter.Seq[string] {
	return func(yield func(string) bool) {
		for j := range v.Len() {
			if !yield(v.Index(j).String()) {
				return
			}
		}
	}
}
