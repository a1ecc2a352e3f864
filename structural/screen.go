package structural

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Screen is a conducting cylinder shielding the field transients between
// magnet stages.
type Screen struct {
	Name string
	R    [2]float64
	Z    [2]float64
}

func (s *Screen) Validate() error {
	if err := validate.NotEmpty("Screen", "name", s.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("Screen", "r", s.R); err != nil {
		return err
	}
	return validate.OrderedPair("Screen", "z", s.Z)
}

// Bounds returns the radial and axial extent.
func (s *Screen) Bounds() ([2]float64, [2]float64, error) {
	if s.R[1] <= s.R[0] || s.Z[1] <= s.Z[0] {
		return [2]float64{}, [2]float64{}, fmt.Errorf("screen %q has unset bounds", s.Name)
	}
	return s.R, s.Z, nil
}

// CharacteristicLength is the mesh sizing hint.
func (s *Screen) CharacteristicLength() float64 {
	return (s.R[1] - s.R[0]) / 10
}

// Names lists the region names.
func (s *Screen) Names(prefix string) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	return []string{base + s.Name + "_Screen"}
}

func (s *Screen) Classname() string { return "Screen" }

func (s *Screen) ToMap() map[string]any {
	return map[string]any{
		"name": s.Name,
		"r":    codec.PairAny(s.R),
		"z":    codec.PairAny(s.Z),
	}
}

func ScreenFromMap(d map[string]any) (any, error) {
	s := &Screen{}
	var err error
	if s.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if s.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if s.Z, err = codec.Pair(d["z"]); err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
