package codec

import (
	"fmt"
	"log/slog"
	"sort"
)

// Registry maps discriminant names to factories. Registration is an explicit
// call made by the embedding application; nothing registers itself on import.
type Registry struct {
	factories map[string]FromMap
	log       *slog.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FromMap),
		log:       slog.Default(),
	}
}

// WithLogger replaces the logger used for decode warnings.
func (r *Registry) WithLogger(log *slog.Logger) *Registry {
	r.log = log
	return r
}

// Register binds a discriminant name to a factory. Re-registering a name
// replaces the previous factory.
func (r *Registry) Register(name string, fn FromMap) {
	r.factories[name] = fn
}

// Names returns the registered discriminants in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode converts a parsed document tree into typed components. Mappings are
// decoded bottom-up so factories receive children already typed. A mapping
// with an unknown discriminant is returned unchanged, discriminant included,
// after logging a warning; foreign data must survive a round-trip.
func (r *Registry) Decode(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			dec, err := r.Decode(val)
			if err != nil {
				return nil, fmt.Errorf("decode %q: %w", key, err)
			}
			t[key] = dec
		}
		name, ok := t[Discriminant].(string)
		if !ok {
			return t, nil
		}
		fn, ok := r.factories[name]
		if !ok {
			r.log.Warn("unknown component type, keeping raw mapping", "classname", name)
			return t, nil
		}
		delete(t, Discriminant)
		obj, err := fn(t)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", name, err)
		}
		return obj, nil
	case []any:
		for i, val := range t {
			dec, err := r.Decode(val)
			if err != nil {
				return nil, fmt.Errorf("decode [%d]: %w", i, err)
			}
			t[i] = dec
		}
		return t, nil
	default:
		return v, nil
	}
}

// DecodeMapping is Decode restricted to a mapping root.
func (r *Registry) DecodeMapping(m map[string]any) (any, error) {
	return r.Decode(m)
}
