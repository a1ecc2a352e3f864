package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Probe places an instrumentation point at cylindrical position [r, z, theta].
type Probe struct {
	Name     string
	Type     ProbeType
	Position [3]float64
	Active   bool
	Range    []float64
	Accuracy float64
}

func (p *Probe) Validate() error {
	if err := validate.NotEmpty("Probe", "name", p.Name); err != nil {
		return err
	}
	if err := p.Type.Validate(); err != nil {
		return err
	}
	if len(p.Range) != 0 && len(p.Range) != 2 {
		return &validate.FieldError{Type: "Probe", Field: "range",
			Msg: fmt.Sprintf("expected [min, max], got %d elements", len(p.Range))}
	}
	return nil
}

func (p *Probe) Classname() string { return "Probe" }

func (p *Probe) ToMap() map[string]any {
	m := map[string]any{
		"name":       p.Name,
		"probe_type": string(p.Type),
		"position":   []any{p.Position[0], p.Position[1], p.Position[2]},
		"active":     p.Active,
	}
	if len(p.Range) == 2 {
		m["range"] = codec.FloatsAny(p.Range)
	}
	if p.Accuracy != 0 {
		m["accuracy"] = p.Accuracy
	}
	return m
}

func ProbeFromMap(d map[string]any) (any, error) {
	p := &Probe{Active: true}
	var err error
	if p.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	typ, err := codec.String(d["probe_type"])
	if err != nil {
		return nil, fmt.Errorf("probe_type: %w", err)
	}
	p.Type = ProbeType(typ)
	if v, ok := d["position"]; ok {
		pos, err := codec.Floats(v)
		if err != nil {
			return nil, fmt.Errorf("position: %w", err)
		}
		if len(pos) != 3 {
			return nil, fmt.Errorf("position: expected [r, z, theta], got %d elements", len(pos))
		}
		copy(p.Position[:], pos)
	}
	if v, ok := d["active"]; ok {
		if p.Active, err = codec.Bool(v); err != nil {
			return nil, fmt.Errorf("active: %w", err)
		}
	}
	if v, ok := d["range"]; ok && v != nil {
		if p.Range, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("range: %w", err)
		}
	}
	if v, ok := d["accuracy"]; ok {
		if p.Accuracy, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("accuracy: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
