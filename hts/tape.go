// Package hts models the layered make-up of a superconducting insert, from a
// single conductor tape up to the full stack of double pancakes.
package hts

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Tape is one turn of HTS conductor: w and h are the superconductor section,
// e the co-wound insulation thickness. All radial widths, h axial.
type Tape struct {
	W float64
	H float64
	E float64
}

func (t *Tape) Validate() error {
	if err := validate.NonNegative("Tape", "w", t.W); err != nil {
		return err
	}
	if err := validate.NonNegative("Tape", "h", t.H); err != nil {
		return err
	}
	return validate.NonNegative("Tape", "e", t.E)
}

// TotalWidth is the radial footprint of one wound turn.
func (t *Tape) TotalWidth() float64 { return t.W + t.E }

// FillingFactor is the superconductor fraction of the radial footprint.
func (t *Tape) FillingFactor() float64 {
	if t.TotalWidth() == 0 {
		return 0
	}
	return t.W / t.TotalWidth()
}

// Names lists the regions of one turn: the conductor and, when insulated, the
// co-wound insulation.
func (t *Tape) Names(base string) []string {
	var names []string
	if t.W > 0 {
		names = append(names, base+"_SC")
	}
	if t.E > 0 {
		names = append(names, base+"_Insulation")
	}
	return names
}

func (t *Tape) Classname() string { return "Tape" }

func (t *Tape) ToMap() map[string]any {
	return map[string]any{"w": t.W, "h": t.H, "e": t.E}
}

func TapeFromMap(d map[string]any) (any, error) {
	t := &Tape{}
	var err error
	for key, dst := range map[string]*float64{"w": &t.W, "h": &t.H, "e": &t.E} {
		if v, ok := d[key]; ok {
			if *dst, err = codec.Float(v); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func TapeConv(d map[string]any) (*Tape, error) {
	v, err := TapeFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Tape), nil
}
