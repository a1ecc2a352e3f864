package hts

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Isolation is a stack of insulating layers starting at radius R0, given as
// parallel width and height lists. An empty or all-zero stack means no
// isolation at all.
type Isolation struct {
	R0 float64
	W  []float64
	H  []float64
}

func (iso *Isolation) Validate() error {
	return validate.NonNegative("Isolation", "r0", iso.R0)
}

// IsEmpty reports an isolation with no effective layer.
func (iso *Isolation) IsEmpty() bool {
	if iso == nil || len(iso.W) == 0 || len(iso.H) == 0 {
		return true
	}
	allZero := func(vs []float64) bool {
		for _, v := range vs {
			if v != 0 {
				return false
			}
		}
		return true
	}
	return allZero(iso.W) || allZero(iso.H)
}

// Thickness is the total axial height of the stack.
func (iso *Isolation) Thickness() float64 {
	if iso == nil {
		return 0
	}
	return floats.Sum(iso.H)
}

// MaxWidth is the widest layer.
func (iso *Isolation) MaxWidth() float64 {
	if iso == nil || len(iso.W) == 0 {
		return 0
	}
	return floats.Max(iso.W)
}

// R1 is the outer radius of the widest layer.
func (iso *Isolation) R1() float64 { return iso.R0 + iso.MaxWidth() }

// Names returns one name per layer when more than one layer exists, otherwise
// the base name alone.
func (iso *Isolation) Names(base string) []string {
	if len(iso.W) > 1 {
		names := make([]string, len(iso.W))
		for i := range iso.W {
			names[i] = fmt.Sprintf("%s_Layer%d", base, i)
		}
		return names
	}
	return []string{base}
}

func (iso *Isolation) Classname() string { return "Isolation" }

func (iso *Isolation) ToMap() map[string]any {
	return map[string]any{
		"r0": iso.R0,
		"w":  codec.FloatsAny(iso.W),
		"h":  codec.FloatsAny(iso.H),
	}
}

func IsolationFromMap(d map[string]any) (any, error) {
	iso := &Isolation{}
	var err error
	if v, ok := d["r0"]; ok {
		if iso.R0, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("r0: %w", err)
		}
	}
	if v, ok := d["w"]; ok && v != nil {
		if iso.W, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("w: %w", err)
		}
	}
	if v, ok := d["h"]; ok && v != nil {
		if iso.H, err = codec.Floats(v); err != nil {
			return nil, fmt.Errorf("h: %w", err)
		}
	}
	if len(iso.W) != len(iso.H) {
		// tolerated in existing files, truncate to the shorter list
		slog.Warn("isolation layer lists differ in length, truncating",
			"w", len(iso.W), "h", len(iso.H))
		n := min(len(iso.W), len(iso.H))
		iso.W = iso.W[:n]
		iso.H = iso.H[:n]
	}
	if err := iso.Validate(); err != nil {
		return nil, err
	}
	return iso, nil
}

func IsolationConv(d map[string]any) (*Isolation, error) {
	v, err := IsolationFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Isolation), nil
}
