package trimdecode

import "encoding/json"

// Decoder produces one raw value. *json.Decoder and *yaml.Node implement it.
type Decoder interface {
	Decode(v any) error
}

// Func is the signature shared by every decode function in this package:
// decode one raw value from d, normalize it, or return d's error unchanged.
type Func[T any] func(d Decoder) (T, error)

// JSON is a single raw JSON value, as handed to json.Unmarshaler.
type JSON []byte

// Decode unmarshals the raw value into v.
func (j JSON) Decode(v any) error {
	return json.Unmarshal(j, v)
}

// decodeJSON hands b to decode unless it is the literal null, which leaves
// the field as it was, the way encoding/json treats null for a string.
func decodeJSON(b []byte, decode func(Decoder) error) error {
	if string(b) == "null" {
		return nil
	}
	return decode(JSON(b))
}
