package codec

import "fmt"

// Coercion helpers for decoded documents. YAML and JSON parsers disagree on
// number types (int vs int64 vs float64), so factories never type-assert
// scalars directly.

// Float coerces any numeric scalar to float64.
func Float(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// Int coerces any integral scalar to int.
func Int(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case uint64:
		return int(t), nil
	case float64:
		return int(t), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

// Bool asserts a boolean scalar.
func Bool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", v)
	}
	return b, nil
}

// String asserts a string scalar.
func String(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// Floats coerces a sequence of numbers.
func Floats(v any) ([]float64, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected sequence, got %T", v)
	}
	out := make([]float64, len(seq))
	for i, item := range seq {
		f, err := Float(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// Ints coerces a sequence of integers.
func Ints(v any) ([]int, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected sequence, got %T", v)
	}
	out := make([]int, len(seq))
	for i, item := range seq {
		n, err := Int(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// Pair coerces a two-element numeric sequence, the usual [min, max] bound.
func Pair(v any) ([2]float64, error) {
	fs, err := Floats(v)
	if err != nil {
		return [2]float64{}, err
	}
	if len(fs) != 2 {
		return [2]float64{}, fmt.Errorf("expected 2 elements, got %d", len(fs))
	}
	return [2]float64{fs[0], fs[1]}, nil
}

// Mapping asserts a nested mapping.
func Mapping(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected mapping, got %T", v)
	}
	return m, nil
}

// Slice asserts a sequence.
func Slice(v any) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected sequence, got %T", v)
	}
	return s, nil
}

// FloatsAny re-wraps a float slice for ToMap output.
func FloatsAny(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

// IntsAny re-wraps an int slice for ToMap output.
func IntsAny(ns []int) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

// PairAny re-wraps a bound pair for ToMap output.
func PairAny(p [2]float64) []any {
	return []any{p[0], p[1]}
}
