// Package codec implements the tagged-mapping serialization used by every
// component type. A mapping carrying the reserved discriminant key decodes to
// the registered Go type; anything else passes through unchanged.
package codec

import "errors"

// Discriminant is the reserved mapping key naming the concrete type.
const Discriminant = "__classname__"

var (
	// ErrNotFound reports a sidecar document that could not be located.
	ErrNotFound = errors.New("document not found")
	// ErrNotMapping reports a document whose root is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
)

// FromMap builds a typed component from a decoded mapping. The discriminant
// key has already been stripped; nested tagged mappings have already been
// decoded to their Go types.
type FromMap func(m map[string]any) (any, error)

// Encoder is implemented by values that serialize to a tagged mapping.
type Encoder interface {
	Classname() string
	ToMap() map[string]any
}

// Validator is implemented by components that can check their own invariants.
type Validator interface {
	Validate() error
}
