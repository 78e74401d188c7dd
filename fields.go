package trimdecode

import (
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/Gobd/trimdecode/transform"
)

// Policy selects, at the type level, whether a collection field keeps or
// drops elements that are blank after trimming. It is implemented only by
// [KeepEmpty] and [DropEmpty].
type Policy interface {
	policy() transform.Policy
}

// KeepEmpty trims elements and keeps blank ones as "".
type KeepEmpty struct{}

// DropEmpty trims elements and removes blank ones.
type DropEmpty struct{}

func (KeepEmpty) policy() transform.Policy { return transform.KeepEmpty }
func (DropEmpty) policy() transform.Policy { return transform.DropEmpty }

func policyOf[P Policy]() transform.Policy {
	var p P
	return p.policy()
}

// pick returns keep or drop depending on P.
func pick[P Policy, T any](keep, drop Func[T]) Func[T] {
	if policyOf[P]() == transform.DropEmpty {
		return drop
	}
	return keep
}

// fieldShape is what the schema generator needs to know about a field type.
type fieldShape struct {
	array    bool
	nullable bool
	unique   bool
	policy   transform.Policy
}

// String is a string that is trimmed when decoded.
type String string

func (String) shape() fieldShape { return fieldShape{} }

// UnmarshalJSON implements json.Unmarshaler. null leaves s unchanged.
func (s *String) UnmarshalJSON(b []byte) error {
	return decodeJSON(b, s.decode)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *String) UnmarshalYAML(n *yaml.Node) error {
	return s.decode(n)
}

func (s *String) decode(d Decoder) error {
	v, err := DecodeString(d)
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// OptionalString is a nullable string that is trimmed when decoded. A blank
// value decodes to absent, the same as null or a missing key. The zero value
// is absent.
type OptionalString struct {
	v *string
}

// NewOptionalString returns s trimmed, or absent when s is blank.
func NewOptionalString(s string) OptionalString {
	return OptionalString{v: transform.Optional(&s)}
}

func (OptionalString) shape() fieldShape { return fieldShape{nullable: true} }

// Get returns the value and whether it is present.
func (o OptionalString) Get() (string, bool) {
	if o.v == nil {
		return "", false
	}
	return *o.v, true
}

// Ptr returns a copy of the value, or nil when absent.
func (o OptionalString) Ptr() *string {
	if o.v == nil {
		return nil
	}
	s := *o.v
	return &s
}

// Or returns the value, or def when absent.
func (o OptionalString) Or(def string) string {
	if o.v == nil {
		return def
	}
	return *o.v
}

// SetDefault sets the value to def, trimmed, when it is absent. A present
// value is left alone. The validate functions call it for fields tagged
// default:"x".
func (o *OptionalString) SetDefault(def string) {
	if o.v == nil {
		o.v = transform.Optional(&def)
	}
}

// IsZero reports whether the value is absent. It makes omitzero work.
func (o OptionalString) IsZero() bool {
	return o.v == nil
}

// Value implements driver.Valuer; absent is NULL. ozzo-validation rules see
// through it, so Required rejects an absent OptionalString.
func (o OptionalString) Value() (driver.Value, error) {
	if o.v == nil {
		return nil, nil
	}
	return *o.v, nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.v)
}

// MarshalYAML implements yaml.Marshaler.
func (o OptionalString) MarshalYAML() (any, error) {
	if o.v == nil {
		return nil, nil
	}
	return *o.v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	return o.decode(JSON(b))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptionalString) UnmarshalYAML(n *yaml.Node) error {
	return o.decode(n)
}

func (o *OptionalString) decode(d Decoder) error {
	v, err := DecodeOptionalString(d)
	if err != nil {
		return err
	}
	o.v = v
	return nil
}
