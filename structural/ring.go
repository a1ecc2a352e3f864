// Package structural defines the passive components around the magnets:
// connection rings, field screens and current leads.
package structural

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Ring connects two helices electrically. BPSide places it at the
// low-pressure end, n and angle describe the cooling slit pattern machined
// into it.
type Ring struct {
	Name    string
	R       [2]float64
	Z       [2]float64
	N       int
	Angle   float64
	BPSide  bool
	Fillets bool
	Cad     string
}

func (r *Ring) Validate() error {
	if err := validate.NotEmpty("Ring", "name", r.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("Ring", "r", r.R); err != nil {
		return err
	}
	if err := validate.OrderedPair("Ring", "z", r.Z); err != nil {
		return err
	}
	return validate.NonNegative("Ring", "n", float64(r.N))
}

// Bounds returns the radial and axial extent.
func (r *Ring) Bounds() ([2]float64, [2]float64, error) {
	if r.R[1] <= r.R[0] || r.Z[1] <= r.Z[0] {
		return [2]float64{}, [2]float64{}, fmt.Errorf("ring %q has unset bounds", r.Name)
	}
	return r.R, r.Z, nil
}

// CharacteristicLength is the mesh sizing hint.
func (r *Ring) CharacteristicLength() float64 {
	return (r.R[1] - r.R[0]) / 10
}

// Names lists the region names.
func (r *Ring) Names(prefix string) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	return []string{base + r.Name + "_Ring"}
}

func (r *Ring) Classname() string { return "Ring" }

func (r *Ring) ToMap() map[string]any {
	m := map[string]any{
		"name":    r.Name,
		"r":       codec.PairAny(r.R),
		"z":       codec.PairAny(r.Z),
		"n":       r.N,
		"angle":   r.Angle,
		"BPside":  r.BPSide,
		"fillets": r.Fillets,
	}
	if r.Cad != "" {
		m["cad"] = r.Cad
	}
	return m
}

func RingFromMap(d map[string]any) (any, error) {
	r := &Ring{BPSide: true}
	var err error
	if r.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if r.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if r.Z, err = codec.Pair(d["z"]); err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}
	if v, ok := d["n"]; ok {
		if r.N, err = codec.Int(v); err != nil {
			return nil, fmt.Errorf("n: %w", err)
		}
	}
	if v, ok := d["angle"]; ok {
		if r.Angle, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("angle: %w", err)
		}
	}
	if v, ok := d["BPside"]; ok {
		if r.BPSide, err = codec.Bool(v); err != nil {
			return nil, fmt.Errorf("BPside: %w", err)
		}
	}
	if v, ok := d["fillets"]; ok {
		if r.Fillets, err = codec.Bool(v); err != nil {
			return nil, fmt.Errorf("fillets: %w", err)
		}
	}
	if v, ok := d["cad"]; ok && v != nil {
		if r.Cad, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("cad: %w", err)
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
