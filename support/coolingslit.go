package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/geom"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// CoolingSlit describes a ring of n identical cooling channels at radius r.
// Dh and Sh are the stored hydraulic diameter and single-channel section;
// Shape optionally references the channel cross-section polygon.
type CoolingSlit struct {
	Name  string
	R     float64
	Angle float64
	N     int
	Dh    float64
	Sh    float64
	Shape codec.Ref[*geom.Shape2D]
}

func (c *CoolingSlit) Validate() error {
	if err := validate.Positive("CoolingSlit", "r", c.R); err != nil {
		return err
	}
	if c.N <= 0 {
		return &validate.FieldError{Type: "CoolingSlit", Field: "n", Msg: "must be at least 1"}
	}
	if err := validate.NonNegative("CoolingSlit", "dh", c.Dh); err != nil {
		return err
	}
	return validate.NonNegative("CoolingSlit", "sh", c.Sh)
}

// HydraulicDiameter returns the stored Dh, falling back to the resolved shape
// when Dh was left at zero.
func (c *CoolingSlit) HydraulicDiameter(load codec.LoadFunc) float64 {
	if c.Dh > 0 {
		return c.Dh
	}
	if shape := c.Shape.Get(geom.Conv, load); shape != nil {
		return shape.EquivalentDiameter()
	}
	return 0
}

// SectionArea returns the stored Sh, falling back to the resolved shape.
func (c *CoolingSlit) SectionArea(load codec.LoadFunc) float64 {
	if c.Sh > 0 {
		return c.Sh
	}
	if shape := c.Shape.Get(geom.Conv, load); shape != nil {
		return shape.Area()
	}
	return 0
}

func (c *CoolingSlit) Classname() string { return "CoolingSlit" }

func (c *CoolingSlit) ToMap() map[string]any {
	m := map[string]any{
		"name":  c.Name,
		"r":     c.R,
		"angle": c.Angle,
		"n":     c.N,
		"dh":    c.Dh,
		"sh":    c.Sh,
	}
	if !c.Shape.IsZero() {
		m["shape"] = c.Shape
	}
	return m
}

func CoolingSlitFromMap(d map[string]any) (any, error) {
	c := &CoolingSlit{}
	var err error
	if v, ok := d["name"]; ok {
		if c.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if c.R, err = codec.Float(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if v, ok := d["angle"]; ok {
		if c.Angle, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("angle: %w", err)
		}
	}
	if c.N, err = codec.Int(d["n"]); err != nil {
		return nil, fmt.Errorf("n: %w", err)
	}
	if c.Dh, err = codec.Float(d["dh"]); err != nil {
		return nil, fmt.Errorf("dh: %w", err)
	}
	if c.Sh, err = codec.Float(d["sh"]); err != nil {
		return nil, fmt.Errorf("sh: %w", err)
	}
	if v, ok := d["shape"]; ok && v != nil {
		c.Shape = codec.RawRef[*geom.Shape2D](v)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func CoolingSlitConv(d map[string]any) (*CoolingSlit, error) {
	v, err := CoolingSlitFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*CoolingSlit), nil
}
