package hts

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/support"
)

// DblPancake is two identical pancakes wound back to back around an internal
// isolation layer, centered at axial position Z0.
type DblPancake struct {
	Z0        float64
	Pancake   Pancake
	Isolation Isolation
}

func (dp *DblPancake) Validate() error {
	if err := dp.Pancake.Validate(); err != nil {
		return err
	}
	return dp.Isolation.Validate()
}

// Height is two pancakes plus the internal isolation.
func (dp *DblPancake) Height() float64 {
	return 2*dp.Pancake.Height() + dp.Isolation.Thickness()
}

func (dp *DblPancake) R0() float64 { return dp.Pancake.R0 }
func (dp *DblPancake) R1() float64 { return dp.Pancake.R1() }

// Z1 and Z2 are the bottom and top of the assembly.
func (dp *DblPancake) Z1() float64 { return dp.Z0 - dp.Height()/2 }
func (dp *DblPancake) Z2() float64 { return dp.Z0 + dp.Height()/2 }

// Names drills down: at dblpancake detail the assembly is one region, deeper
// levels expose the two pancakes around their internal isolation.
func (dp *DblPancake) Names(base string, detail support.Detail) []string {
	if detail == support.DetailDblPancake {
		return []string{base}
	}
	var names []string
	names = append(names, dp.Pancake.Names(base+"_p0", detail)...)
	if !dp.Isolation.IsEmpty() {
		names = append(names, dp.Isolation.Names(base+"_isolation")...)
	}
	names = append(names, dp.Pancake.Names(base+"_p1", detail)...)
	return names
}

func (dp *DblPancake) Classname() string { return "DblPancake" }

func (dp *DblPancake) ToMap() map[string]any {
	return map[string]any{
		"z0":        dp.Z0,
		"pancake":   &dp.Pancake,
		"isolation": &dp.Isolation,
	}
}

func DblPancakeFromMap(d map[string]any) (any, error) {
	dp := &DblPancake{}
	var err error
	if v, ok := d["z0"]; ok {
		if dp.Z0, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("z0: %w", err)
		}
	}
	if v, ok := d["pancake"]; ok && v != nil {
		switch p := v.(type) {
		case *Pancake:
			dp.Pancake = *p
		case map[string]any:
			pc, err := PancakeConv(p)
			if err != nil {
				return nil, fmt.Errorf("pancake: %w", err)
			}
			dp.Pancake = *pc
		default:
			return nil, fmt.Errorf("pancake: unexpected type %T", v)
		}
	}
	if v, ok := d["isolation"]; ok && v != nil {
		switch iso := v.(type) {
		case *Isolation:
			dp.Isolation = *iso
		case map[string]any:
			is, err := IsolationConv(iso)
			if err != nil {
				return nil, fmt.Errorf("isolation: %w", err)
			}
			dp.Isolation = *is
		default:
			return nil, fmt.Errorf("isolation: unexpected type %T", v)
		}
	}
	if err := dp.Validate(); err != nil {
		return nil, err
	}
	return dp, nil
}

func DblPancakeConv(d map[string]any) (*DblPancake, error) {
	v, err := DblPancakeFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*DblPancake), nil
}
