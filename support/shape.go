package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Shape is a cut pattern machined into a high-resistance helix: a named
// profile repeated with the given angular lengths and spacings, on the listed
// turns, at a position relative to the winding.
type Shape struct {
	Name     string
	Profile  string
	Length   []float64
	Angle    []float64
	OnTurns  []int
	Position ShapePosition
}

func (s *Shape) Validate() error {
	if err := validate.NotEmpty("Shape", "profile", s.Profile); err != nil {
		return err
	}
	return s.Position.Validate()
}

// FirstAngle returns the leading spacing angle, the one insulator counting
// uses, or 0 when none is set.
func (s *Shape) FirstAngle() float64 {
	if len(s.Angle) == 0 {
		return 0
	}
	return s.Angle[0]
}

func (s *Shape) Classname() string { return "Shape" }

func (s *Shape) ToMap() map[string]any {
	return map[string]any{
		"name":     s.Name,
		"profile":  s.Profile,
		"length":   codec.FloatsAny(s.Length),
		"angle":    codec.FloatsAny(s.Angle),
		"onturns":  codec.IntsAny(s.OnTurns),
		"position": string(s.Position),
	}
}

func ShapeFromMap(d map[string]any) (any, error) {
	s := &Shape{Position: PositionAbove}
	var err error
	if v, ok := d["name"]; ok {
		if s.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if s.Profile, err = codec.String(d["profile"]); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if v, ok := d["length"]; ok {
		if s.Length, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("length: %w", err)
		}
	}
	if v, ok := d["angle"]; ok {
		if s.Angle, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("angle: %w", err)
		}
	}
	if v, ok := d["onturns"]; ok {
		if s.OnTurns, err = codec.Ints(v); err != nil {
			return nil, fmt.Errorf("onturns: %w", err)
		}
	}
	if v, ok := d["position"]; ok {
		pos, err := codec.String(v)
		if err != nil {
			return nil, fmt.Errorf("position: %w", err)
		}
		s.Position = ShapePosition(pos)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ShapeConv is the typed factory used for Ref resolution.
func ShapeConv(d map[string]any) (*Shape, error) {
	v, err := ShapeFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Shape), nil
}
