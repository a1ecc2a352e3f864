package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Groove describes n machined grooves of depth eps on one cylindrical surface.
// The zero Groove means no grooves and validates clean.
type Groove struct {
	Name  string
	GType RadialSide
	N     int
	Eps   float64
}

// IsEmpty reports a groove set with nothing machined.
func (g *Groove) IsEmpty() bool { return g == nil || g.N == 0 }

func (g *Groove) Validate() error {
	if g.IsEmpty() {
		return nil
	}
	if err := g.GType.Validate(); err != nil {
		return err
	}
	return validate.Positive("Groove", "eps", g.Eps)
}

func (g *Groove) Classname() string { return "Groove" }

func (g *Groove) ToMap() map[string]any {
	return map[string]any{
		"name":  g.Name,
		"gtype": string(g.GType),
		"n":     g.N,
		"eps":   g.Eps,
	}
}

func GrooveFromMap(d map[string]any) (any, error) {
	g := &Groove{}
	var err error
	if v, ok := d["name"]; ok {
		if g.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if v, ok := d["gtype"]; ok {
		s, err := codec.String(v)
		if err != nil {
			return nil, fmt.Errorf("gtype: %w", err)
		}
		g.GType = RadialSide(s)
	}
	if v, ok := d["n"]; ok {
		if g.N, err = codec.Int(v); err != nil {
			return nil, fmt.Errorf("n: %w", err)
		}
	}
	if v, ok := d["eps"]; ok {
		if g.Eps, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("eps: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func GrooveConv(d map[string]any) (*Groove, error) {
	v, err := GrooveFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Groove), nil
}
