package structural

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// InnerCurrentLead feeds current to the innermost helix. Holes and support
// hold the drilling and support plate dimensions as raw parameter lists, the
// CAD side consumes them as-is.
type InnerCurrentLead struct {
	Name    string
	R       [2]float64
	H       float64
	Holes   []float64
	Support []float64
	Fillet  bool
}

func (l *InnerCurrentLead) Validate() error {
	if err := validate.NotEmpty("InnerCurrentLead", "name", l.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("InnerCurrentLead", "r", l.R); err != nil {
		return err
	}
	return validate.NonNegative("InnerCurrentLead", "h", l.H)
}

// Names lists the region names.
func (l *InnerCurrentLead) Names(prefix string) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	return []string{base + l.Name + "_InnerCurrentLead"}
}

func (l *InnerCurrentLead) Classname() string { return "InnerCurrentLead" }

func (l *InnerCurrentLead) ToMap() map[string]any {
	return map[string]any{
		"name":    l.Name,
		"r":       codec.PairAny(l.R),
		"h":       l.H,
		"holes":   codec.FloatsAny(l.Holes),
		"support": codec.FloatsAny(l.Support),
		"fillet":  l.Fillet,
	}
}

func InnerCurrentLeadFromMap(d map[string]any) (any, error) {
	l := &InnerCurrentLead{}
	var err error
	if l.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if l.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if v, ok := d["h"]; ok {
		if l.H, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("h: %w", err)
		}
	}
	if v, ok := d["holes"]; ok && v != nil {
		if l.Holes, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("holes: %w", err)
		}
	}
	if v, ok := d["support"]; ok && v != nil {
		if l.Support, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("support: %w", err)
		}
	}
	if v, ok := d["fillet"]; ok {
		if l.Fillet, err = codec.Bool(v); err != nil {
			return nil, fmt.Errorf("fillet: %w", err)
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// OuterCurrentLead feeds current to the outermost helix. Bar holds the
// connection bar dimensions [R, DX, DY, L], Support the support plate
// parameters [DX0, DZ, Angle, Angle_Zero].
type OuterCurrentLead struct {
	Name    string
	R       [2]float64
	H       float64
	Bar     []float64
	Support []float64
}

func (l *OuterCurrentLead) Validate() error {
	if err := validate.NotEmpty("OuterCurrentLead", "name", l.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("OuterCurrentLead", "r", l.R); err != nil {
		return err
	}
	if err := validate.NonNegative("OuterCurrentLead", "h", l.H); err != nil {
		return err
	}
	if n := len(l.Bar); n != 0 && n != 4 {
		return &validate.FieldError{Type: "OuterCurrentLead", Field: "bar",
			Msg: fmt.Sprintf("wants [R, DX, DY, L], got %d values", n)}
	}
	if n := len(l.Support); n != 0 && n != 4 {
		return &validate.FieldError{Type: "OuterCurrentLead", Field: "support",
			Msg: fmt.Sprintf("wants [DX0, DZ, Angle, Angle_Zero], got %d values", n)}
	}
	return nil
}

// Names lists the region names.
func (l *OuterCurrentLead) Names(prefix string) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	return []string{base + l.Name + "_OuterCurrentLead"}
}

func (l *OuterCurrentLead) Classname() string { return "OuterCurrentLead" }

func (l *OuterCurrentLead) ToMap() map[string]any {
	return map[string]any{
		"name":    l.Name,
		"r":       codec.PairAny(l.R),
		"h":       l.H,
		"bar":     codec.FloatsAny(l.Bar),
		"support": codec.FloatsAny(l.Support),
	}
}

func OuterCurrentLeadFromMap(d map[string]any) (any, error) {
	l := &OuterCurrentLead{}
	var err error
	if l.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if l.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if v, ok := d["h"]; ok {
		if l.H, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("h: %w", err)
		}
	}
	if v, ok := d["bar"]; ok && v != nil {
		if l.Bar, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("bar: %w", err)
		}
	}
	if v, ok := d["support"]; ok && v != nil {
		if l.Support, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("support: %w", err)
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
