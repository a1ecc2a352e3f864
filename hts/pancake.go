package hts

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
	"github.com/Trophime/magnetgeo-claude/support"
)

// Pancake is a single winding of NTapes turns starting at radius R0, wound on
// a mandrel of radius Mandrin.
type Pancake struct {
	R0      float64
	Mandrin float64
	NTapes  int
	Tape    Tape
}

func (p *Pancake) Validate() error {
	if err := validate.NonNegative("Pancake", "r0", p.R0); err != nil {
		return err
	}
	if p.NTapes < 0 {
		return &validate.FieldError{Type: "Pancake", Field: "ntapes", Msg: "must be non-negative"}
	}
	return p.Tape.Validate()
}

// R1 is the outer radius after NTapes wound turns.
func (p *Pancake) R1() float64 {
	return p.R0 + float64(p.NTapes)*p.Tape.TotalWidth()
}

// Height is the axial extent, one tape high.
func (p *Pancake) Height() float64 { return p.Tape.H }

// Area is the radial cross section of the winding.
func (p *Pancake) Area() float64 {
	return (p.R1() - p.R0) * p.Height()
}

// Names drills down to the requested detail. The mandrel only appears when it
// sits inside the winding start radius.
func (p *Pancake) Names(base string, detail support.Detail) []string {
	if detail == support.DetailPancake {
		return []string{base}
	}
	var names []string
	if p.Mandrin < p.R0 {
		names = append(names, base+"_Mandrel")
	}
	switch detail {
	case support.DetailTurn:
		for i := 0; i < p.NTapes; i++ {
			names = append(names, fmt.Sprintf("%s_Turn%d", base, i))
		}
	case support.DetailTape:
		for i := 0; i < p.NTapes; i++ {
			names = append(names, p.Tape.Names(fmt.Sprintf("%s_Turn%d", base, i))...)
		}
	default:
		names = append(names, base)
	}
	return names
}

func (p *Pancake) Classname() string { return "Pancake" }

func (p *Pancake) ToMap() map[string]any {
	return map[string]any{
		"r0":      p.R0,
		"mandrin": p.Mandrin,
		"ntapes":  p.NTapes,
		"tape":    &p.Tape,
	}
}

func PancakeFromMap(d map[string]any) (any, error) {
	p := &Pancake{}
	var err error
	if v, ok := d["r0"]; ok {
		if p.R0, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("r0: %w", err)
		}
	}
	if v, ok := d["mandrin"]; ok {
		if p.Mandrin, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("mandrin: %w", err)
		}
	}
	// older files write the turn count as n
	count, ok := d["ntapes"]
	if !ok {
		count = d["n"]
	}
	if count != nil {
		if p.NTapes, err = codec.Int(count); err != nil {
			return nil, fmt.Errorf("ntapes: %w", err)
		}
	}
	if v, ok := d["tape"]; ok && v != nil {
		switch tape := v.(type) {
		case *Tape:
			p.Tape = *tape
		case map[string]any:
			tp, err := TapeConv(tape)
			if err != nil {
				return nil, fmt.Errorf("tape: %w", err)
			}
			p.Tape = *tp
		default:
			return nil, fmt.Errorf("tape: unexpected type %T", v)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func PancakeConv(d map[string]any) (*Pancake, error) {
	v, err := PancakeFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Pancake), nil
}
