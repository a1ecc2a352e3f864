package codec

// refPayloader is the non-generic view of Ref used during encoding.
type refPayloader interface {
	refPayload() any
}

// Encode converts a typed component tree back into plain mappings and slices
// suitable for JSON or YAML marshalling. Encoders gain the discriminant key;
// unresolved references encode whatever raw form they still hold.
func Encode(v any) any {
	switch t := v.(type) {
	case Encoder:
		m := make(map[string]any, len(t.ToMap())+1)
		for k, val := range t.ToMap() {
			m[k] = Encode(val)
		}
		m[Discriminant] = t.Classname()
		return m
	case refPayloader:
		return Encode(t.refPayload())
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = Encode(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = Encode(val)
		}
		return s
	default:
		return v
	}
}
