package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/geom"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Tierod describes the ring of n tie rods clamping a Bitter stack, with the
// same hydraulic bookkeeping as a cooling slit.
type Tierod struct {
	Name  string
	R     float64
	N     int
	Dh    float64
	Sh    float64
	Shape codec.Ref[*geom.Shape2D]
}

func (t *Tierod) Validate() error {
	if err := validate.Positive("Tierod", "r", t.R); err != nil {
		return err
	}
	if t.N <= 0 {
		return &validate.FieldError{Type: "Tierod", Field: "n", Msg: "must be at least 1"}
	}
	if err := validate.NonNegative("Tierod", "dh", t.Dh); err != nil {
		return err
	}
	return validate.NonNegative("Tierod", "sh", t.Sh)
}

func (t *Tierod) Classname() string { return "Tierod" }

func (t *Tierod) ToMap() map[string]any {
	m := map[string]any{
		"name": t.Name,
		"r":    t.R,
		"n":    t.N,
		"dh":   t.Dh,
		"sh":   t.Sh,
	}
	if !t.Shape.IsZero() {
		m["shape"] = t.Shape
	}
	return m
}

func TierodFromMap(d map[string]any) (any, error) {
	t := &Tierod{}
	var err error
	if v, ok := d["name"]; ok {
		if t.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if t.R, err = codec.Float(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if t.N, err = codec.Int(d["n"]); err != nil {
		return nil, fmt.Errorf("n: %w", err)
	}
	if t.Dh, err = codec.Float(d["dh"]); err != nil {
		return nil, fmt.Errorf("dh: %w", err)
	}
	if t.Sh, err = codec.Float(d["sh"]); err != nil {
		return nil, fmt.Errorf("sh: %w", err)
	}
	if v, ok := d["shape"]; ok && v != nil {
		t.Shape = codec.RawRef[*geom.Shape2D](v)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func TierodConv(d map[string]any) (*Tierod, error) {
	v, err := TierodFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Tierod), nil
}
