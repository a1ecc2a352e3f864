// Package support holds the flat descriptors attached to the main magnet
// components: winding profiles, cooling features, cut patterns and probes.
package support

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// CompactTol is the default relative pitch tolerance for section merging.
const CompactTol = 1.0e-6

// ModelAxi is the axisymmetric winding profile: parallel lists of turn counts
// and pitches per section, plus the half-height h of the winding.
type ModelAxi struct {
	Name  string
	H     float64
	Turns []float64
	Pitch []float64
}

func (m *ModelAxi) Validate() error {
	if err := validate.LenEqual("ModelAxi", "turns/pitch", len(m.Turns), len(m.Pitch)); err != nil {
		return err
	}
	return validate.NonNegative("ModelAxi", "h", m.H)
}

// TotalTurns returns the summed turn count over all sections.
func (m *ModelAxi) TotalTurns() float64 {
	return floats.Sum(m.Turns)
}

// TotalHeight returns the total axial length of the winding path, the sum of
// turns times pitch per section.
func (m *ModelAxi) TotalHeight() float64 {
	total := 0.0
	for i, turns := range m.Turns {
		total += turns * m.Pitch[i]
	}
	return total
}

// SectionCount returns the number of winding sections.
func (m *ModelAxi) SectionCount() int { return len(m.Turns) }

// Compact merges consecutive sections whose pitches agree within the relative
// tolerance, summing their turn counts. The profile itself is not modified.
func (m *ModelAxi) Compact(tol float64) (turns, pitch []float64) {
	if len(m.Turns) == 0 {
		return nil, nil
	}
	turns = append(turns, m.Turns[0])
	pitch = append(pitch, m.Pitch[0])
	for i := 1; i < len(m.Turns); i++ {
		last := pitch[len(pitch)-1]
		if last != 0 && math.Abs(1-m.Pitch[i]/last) <= tol {
			turns[len(turns)-1] += m.Turns[i]
			continue
		}
		turns = append(turns, m.Turns[i])
		pitch = append(pitch, m.Pitch[i])
	}
	return turns, pitch
}

func (m *ModelAxi) Classname() string { return "ModelAxi" }

func (m *ModelAxi) ToMap() map[string]any {
	return map[string]any{
		"name":  m.Name,
		"h":     m.H,
		"turns": codec.FloatsAny(m.Turns),
		"pitch": codec.FloatsAny(m.Pitch),
	}
}

func ModelAxiFromMap(d map[string]any) (any, error) {
	m := &ModelAxi{}
	var err error
	if v, ok := d["name"]; ok {
		if m.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if v, ok := d["h"]; ok {
		if m.H, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("h: %w", err)
		}
	}
	if v, ok := d["turns"]; ok {
		if m.Turns, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("turns: %w", err)
		}
	}
	if v, ok := d["pitch"]; ok {
		if m.Pitch, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("pitch: %w", err)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ModelAxiConv is the typed factory used for Ref resolution.
func ModelAxiConv(d map[string]any) (*ModelAxi, error) {
	v, err := ModelAxiFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*ModelAxi), nil
}
