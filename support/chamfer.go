package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Chamfer bevels one corner of a component: an axial end crossed with a
// radial side, an angle and a length.
type Chamfer struct {
	Name  string
	Side  Side
	RSide RadialSide
	Alpha float64
	L     float64
}

func (c *Chamfer) Validate() error {
	if err := c.Side.Validate(); err != nil {
		return err
	}
	if err := c.RSide.Validate(); err != nil {
		return err
	}
	if err := validate.Positive("Chamfer", "alpha", c.Alpha); err != nil {
		return err
	}
	return validate.Positive("Chamfer", "L", c.L)
}

func (c *Chamfer) Classname() string { return "Chamfer" }

func (c *Chamfer) ToMap() map[string]any {
	// L stays uppercase on the wire for compatibility with existing files
	return map[string]any{
		"name":  c.Name,
		"side":  string(c.Side),
		"rside": string(c.RSide),
		"alpha": c.Alpha,
		"L":     c.L,
	}
}

func ChamferFromMap(d map[string]any) (any, error) {
	c := &Chamfer{}
	var err error
	if v, ok := d["name"]; ok {
		if c.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	side, err := codec.String(d["side"])
	if err != nil {
		return nil, fmt.Errorf("side: %w", err)
	}
	c.Side = Side(side)
	rside, err := codec.String(d["rside"])
	if err != nil {
		return nil, fmt.Errorf("rside: %w", err)
	}
	c.RSide = RadialSide(rside)
	if c.Alpha, err = codec.Float(d["alpha"]); err != nil {
		return nil, fmt.Errorf("alpha: %w", err)
	}
	if c.L, err = codec.Float(d["L"]); err != nil {
		return nil, fmt.Errorf("L: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ChamferConv(d map[string]any) (*Chamfer, error) {
	v, err := ChamferFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Chamfer), nil
}
