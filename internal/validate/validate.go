// Package validate holds the invariant checks shared by every component type.
package validate

import "fmt"

// FieldError contains structured information about an invalid parameter.
type FieldError struct {
	Type  string
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q %s", e.Type, e.Field, e.Msg)
}

// Positive returns an error when v is not strictly positive.
func Positive(typ, field string, v float64) error {
	if v <= 0 {
		return &FieldError{Type: typ, Field: field, Msg: fmt.Sprintf("must be positive, got %g", v)}
	}
	return nil
}

// NonNegative returns an error when v is negative.
func NonNegative(typ, field string, v float64) error {
	if v < 0 {
		return &FieldError{Type: typ, Field: field, Msg: fmt.Sprintf("must be non-negative, got %g", v)}
	}
	return nil
}

// NotEmpty returns an error when s is the empty string.
func NotEmpty(typ, field, s string) error {
	if s == "" {
		return &FieldError{Type: typ, Field: field, Msg: "must not be empty"}
	}
	return nil
}

// OrderedPair checks that p[0] < p[1].
func OrderedPair(typ, field string, p [2]float64) error {
	if p[0] >= p[1] {
		return &FieldError{Type: typ, Field: field, Msg: fmt.Sprintf("must be increasing, got [%g, %g]", p[0], p[1])}
	}
	return nil
}

// LenEqual checks that two parallel slices have the same length.
func LenEqual(typ, field string, a, b int) error {
	if a != b {
		return &FieldError{Type: typ, Field: field, Msg: fmt.Sprintf("parallel lengths differ, %d vs %d", a, b)}
	}
	return nil
}

// OneOf checks that s is one of the allowed values.
func OneOf(typ, field, s string, allowed ...string) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return &FieldError{Type: typ, Field: field, Msg: fmt.Sprintf("must be one of %v, got %q", allowed, s)}
}
