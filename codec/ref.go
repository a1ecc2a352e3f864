package codec

import (
	"fmt"
	"log/slog"
)

// RefState tracks the lifecycle of a lazy reference.
type RefState int

const (
	// RefUnresolved holds a raw mapping or file basename, not yet attempted.
	RefUnresolved RefState = iota
	// RefResolved caches the typed value; later reads return the cache.
	RefResolved
	// RefFailed records one failed attempt; resolution is not retried.
	RefFailed
)

func (s RefState) String() string {
	switch s {
	case RefResolved:
		return "resolved"
	case RefFailed:
		return "failed"
	default:
		return "unresolved"
	}
}

// LoadFunc locates and decodes a sidecar document by basename.
type LoadFunc func(name string) (any, error)

// Ref is a lazily resolved reference to a supporting component. A document
// field may hold the component inline as a tagged mapping, as an untagged
// mapping, or as the basename of a sidecar file; all three land here.
// Resolution happens once: success caches the value, failure keeps the raw
// form available and records the reason.
type Ref[T any] struct {
	raw   any
	val   T
	state RefState
	err   error
}

// TypedRef wraps an already constructed value.
func TypedRef[T any](v T) Ref[T] {
	return Ref[T]{val: v, state: RefResolved}
}

// RawRef wraps a not-yet-resolved mapping or basename. A nil raw yields the
// zero Ref, which resolves to the zero value of T without error.
func RawRef[T any](raw any) Ref[T] {
	if v, ok := raw.(T); ok {
		return TypedRef(v)
	}
	return Ref[T]{raw: raw}
}

func (r *Ref[T]) State() RefState { return r.state }

// Raw returns the undecoded form. It is nil once a typed or mapping form was
// consumed; a basename is kept through resolution.
func (r *Ref[T]) Raw() any { return r.raw }

// Err returns the resolution failure, if any.
func (r *Ref[T]) Err() error { return r.err }

// IsZero reports an absent reference.
func (r *Ref[T]) IsZero() bool {
	return r.state == RefUnresolved && r.raw == nil
}

// Resolve returns the typed value, building it on first use. conv turns an
// untagged mapping into T; load fetches a sidecar document when the raw form
// is a basename string. A past failure is returned again without retrying.
func (r *Ref[T]) Resolve(conv func(map[string]any) (T, error), load LoadFunc) (T, error) {
	switch r.state {
	case RefResolved:
		return r.val, nil
	case RefFailed:
		return r.val, r.err
	}
	if r.raw == nil {
		r.state = RefResolved
		return r.val, nil
	}

	v, err := r.build(conv, load)
	if err != nil {
		r.state = RefFailed
		r.err = err
		return r.val, err
	}
	r.val = v
	r.state = RefResolved
	// A basename stays around so re-encoding writes the path, keeping the
	// sidecar shared between parent files. Mappings are consumed.
	if _, isPath := r.raw.(string); !isPath {
		r.raw = nil
	}
	return r.val, nil
}

func (r *Ref[T]) build(conv func(map[string]any) (T, error), load LoadFunc) (T, error) {
	var zero T
	switch raw := r.raw.(type) {
	case T:
		return raw, nil
	case map[string]any:
		v, err := conv(raw)
		if err != nil {
			return zero, fmt.Errorf("from mapping: %w", err)
		}
		return v, nil
	case string:
		if load == nil {
			return zero, fmt.Errorf("no loader for sidecar %q", raw)
		}
		doc, err := load(raw)
		if err != nil {
			return zero, fmt.Errorf("sidecar %q: %w", raw, err)
		}
		if v, ok := doc.(T); ok {
			return v, nil
		}
		if m, ok := doc.(map[string]any); ok {
			v, err := conv(m)
			if err != nil {
				return zero, fmt.Errorf("sidecar %q: %w", raw, err)
			}
			return v, nil
		}
		return zero, fmt.Errorf("sidecar %q: unexpected document type %T", raw, doc)
	default:
		return zero, fmt.Errorf("unexpected reference form %T", r.raw)
	}
}

// Get is Resolve for callers that tolerate degradation: a failure is logged
// and the zero value returned, mirroring permissive decode.
func (r *Ref[T]) Get(conv func(map[string]any) (T, error), load LoadFunc) T {
	v, err := r.Resolve(conv, load)
	if err != nil {
		slog.Warn("reference resolution failed, degrading to zero value", "err", err)
	}
	return v
}

// refPayload feeds Encode: a reference that still knows its raw form writes
// that form, so a basename round-trips as the path even after resolution.
// Only a reference built typed or from a consumed mapping writes the value.
func (r Ref[T]) refPayload() any {
	if r.raw != nil {
		return r.raw
	}
	if r.state == RefResolved {
		return r.val
	}
	return nil
}
