package transform

// Document normalizes a generically decoded document: the shapes produced by
// decoding into an any with encoding/json or gopkg.in/yaml.v3. Strings are
// trimmed everywhere. Under DropEmpty, blank strings are removed from arrays
// and keys whose value is a blank string are removed from objects.
//
// Objects and arrays are rebuilt; v is not modified.
func Document(v any, p Policy) any {
	switch t := v.(type) {
	case string:
		return Space(t)
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				if s = Space(s); !p.keep(s) {
					continue
				}
				out = append(out, s)
				continue
			}
			out = append(out, Document(e, p))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if n, ok := documentValue(e, p); ok {
				out[k] = n
			}
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			if n, ok := documentValue(e, p); ok {
				out[k] = n
			}
		}
		return out
	default:
		return v
	}
}

func documentValue(v any, p Policy) (any, bool) {
	if s, ok := v.(string); ok {
		s = Space(s)
		return s, p.keep(s)
	}
	return Document(v, p), true
}
