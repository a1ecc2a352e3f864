// Package magnet defines the three main magnet component kinds: resistive
// helices, Bitter stacks and superconducting inserts.
package magnet

import (
	"fmt"
	"math"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
	"github.com/Trophime/magnetgeo-claude/support"
)

// Helix kinds. A helix whose 3D model carries both shapes and channels is the
// high-resistance kind, everything else is low resistance.
const (
	KindHL = "HL"
	KindHR = "HR"
)

// Helix is a helically cut tube conductor. ModelAxi, Model3D and Shape may be
// held inline or as sidecar references.
type Helix struct {
	Name     string
	R        [2]float64
	Z        [2]float64
	CutWidth float64
	Odd      bool
	Dble     bool
	ModelAxi codec.Ref[*support.ModelAxi]
	Model3D  codec.Ref[*support.Model3D]
	Shape    codec.Ref[*support.Shape]
	Chamfers []*support.Chamfer
	Grooves  *support.Groove
}

func (h *Helix) Validate() error {
	if err := validate.NotEmpty("Helix", "name", h.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("Helix", "r", h.R); err != nil {
		return err
	}
	if err := validate.OrderedPair("Helix", "z", h.Z); err != nil {
		return err
	}
	if err := validate.Positive("Helix", "cutwidth", h.CutWidth); err != nil {
		return err
	}
	for i, c := range h.Chamfers {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("chamfer %d: %w", i, err)
		}
	}
	return h.Grooves.Validate()
}

// Bounds returns the radial and axial extent.
func (h *Helix) Bounds() ([2]float64, [2]float64, error) {
	if h.R[1] <= h.R[0] || h.Z[1] <= h.Z[0] {
		return [2]float64{}, [2]float64{}, fmt.Errorf("helix %q has unset bounds", h.Name)
	}
	return h.R, h.Z, nil
}

// Kind reports HL or HR from the 3D model configuration.
func (h *Helix) Kind(load codec.LoadFunc) string {
	m3d := h.Model3D.Get(support.Model3DConv, load)
	if m3d != nil && m3d.WithShapes && m3d.WithChannels {
		return KindHR
	}
	return KindHL
}

// Nturns is the total turn count of the winding profile.
func (h *Helix) Nturns(load codec.LoadFunc) float64 {
	axi := h.ModelAxi.Get(support.ModelAxiConv, load)
	if axi == nil {
		return 0
	}
	return axi.TotalTurns()
}

// Insulators returns the insulator material and count. HL helices are glued,
// doubled ones on both faces; HR helices carry one Kapton patch per cut shape.
func (h *Helix) Insulators(load codec.LoadFunc) (string, int) {
	if h.Kind(load) == KindHR {
		count := 1
		if shape := h.Shape.Get(support.ShapeConv, load); shape != nil {
			if angle := shape.FirstAngle(); angle > 0 {
				count = int(math.Round(h.Nturns(load) * 360 / angle))
				if count < 1 {
					count = 1
				}
			}
		}
		return "Kapton", count
	}
	if h.Dble {
		return "Glue", 2
	}
	return "Glue", 1
}

// SectionNames lists the 2D axisymmetric sections: one copper region per
// winding section plus the two end rings.
func (h *Helix) SectionNames(prefix string, load codec.LoadFunc) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	axi := h.ModelAxi.Get(support.ModelAxiConv, load)
	if axi == nil || axi.SectionCount() == 0 {
		return []string{base + "Cu"}
	}
	names := make([]string, 0, axi.SectionCount()+2)
	for j := 0; j <= axi.SectionCount()+1; j++ {
		names = append(names, fmt.Sprintf("%sCu%d", base, j))
	}
	return names
}

// RegionNames lists the 3D regions: the conductor plus one region per
// insulator.
func (h *Helix) RegionNames(prefix string, load codec.LoadFunc) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	material, count := h.Insulators(load)
	names := []string{base + "Cu"}
	for j := 0; j < count; j++ {
		names = append(names, fmt.Sprintf("%s%s%d", base, material, j))
	}
	return names
}

func (h *Helix) Classname() string { return "Helix" }

func (h *Helix) ToMap() map[string]any {
	m := map[string]any{
		"name":     h.Name,
		"r":        codec.PairAny(h.R),
		"z":        codec.PairAny(h.Z),
		"cutwidth": h.CutWidth,
		"odd":      h.Odd,
		"dble":     h.Dble,
	}
	if !h.ModelAxi.IsZero() {
		m["modelaxi"] = h.ModelAxi
	}
	if !h.Model3D.IsZero() {
		m["model3d"] = h.Model3D
	}
	if !h.Shape.IsZero() {
		m["shape"] = h.Shape
	}
	if len(h.Chamfers) > 0 {
		cs := make([]any, len(h.Chamfers))
		for i, c := range h.Chamfers {
			cs[i] = c
		}
		m["chamfers"] = cs
	}
	if !h.Grooves.IsEmpty() {
		m["grooves"] = h.Grooves
	}
	return m
}

func HelixFromMap(d map[string]any) (any, error) {
	h := &Helix{}
	var err error
	if h.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if h.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if h.Z, err = codec.Pair(d["z"]); err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}
	if h.CutWidth, err = codec.Float(d["cutwidth"]); err != nil {
		return nil, fmt.Errorf("cutwidth: %w", err)
	}
	if h.Odd, err = codec.Bool(d["odd"]); err != nil {
		return nil, fmt.Errorf("odd: %w", err)
	}
	if h.Dble, err = codec.Bool(d["dble"]); err != nil {
		return nil, fmt.Errorf("dble: %w", err)
	}
	if v, ok := d["modelaxi"]; ok && v != nil {
		h.ModelAxi = codec.RawRef[*support.ModelAxi](v)
	}
	if v, ok := d["model3d"]; ok && v != nil {
		h.Model3D = codec.RawRef[*support.Model3D](v)
	}
	if v, ok := d["shape"]; ok && v != nil {
		h.Shape = codec.RawRef[*support.Shape](v)
	}
	if v, ok := d["chamfers"]; ok && v != nil {
		seq, err := codec.Slice(v)
		if err != nil {
			return nil, fmt.Errorf("chamfers: %w", err)
		}
		for i, item := range seq {
			switch c := item.(type) {
			case *support.Chamfer:
				h.Chamfers = append(h.Chamfers, c)
			case map[string]any:
				built, err := support.ChamferConv(c)
				if err != nil {
					return nil, fmt.Errorf("chamfers[%d]: %w", i, err)
				}
				h.Chamfers = append(h.Chamfers, built)
			default:
				return nil, fmt.Errorf("chamfers[%d]: unexpected type %T", i, item)
			}
		}
	}
	if v, ok := d["grooves"]; ok && v != nil {
		switch g := v.(type) {
		case *support.Groove:
			h.Grooves = g
		case map[string]any:
			built, err := support.GrooveConv(g)
			if err != nil {
				return nil, fmt.Errorf("grooves: %w", err)
			}
			h.Grooves = built
		default:
			return nil, fmt.Errorf("grooves: unexpected type %T", v)
		}
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}
