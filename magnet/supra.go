package magnet

import (
	"fmt"
	"log/slog"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/hts"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
	"github.com/Trophime/magnetgeo-claude/support"
)

// dimTol is the absolute tolerance used when syncing supra dimensions with
// the resolved insert stack.
const dimTol = 1.0e-10

// Supra is a superconducting magnet. The envelope r/z/n may stand alone or be
// backed by a detailed HTS insert held in Struct, in which case the insert is
// authoritative for the dimensions. Detail selects how deep region names
// drill into the stack.
type Supra struct {
	Name   string
	R      [2]float64
	Z      [2]float64
	N      int
	Struct codec.Ref[*hts.Insert]
	Detail support.Detail
}

func (s *Supra) Validate() error {
	if err := validate.NotEmpty("Supra", "name", s.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("Supra", "r", s.R); err != nil {
		return err
	}
	if err := validate.OrderedPair("Supra", "z", s.Z); err != nil {
		return err
	}
	if err := validate.NonNegative("Supra", "n", float64(s.N)); err != nil {
		return err
	}
	return s.Detail.Validate()
}

// SetDetail switches the drill-down level for region names.
func (s *Supra) SetDetail(detail support.Detail) error {
	if err := detail.Validate(); err != nil {
		return err
	}
	s.Detail = detail
	return nil
}

// structConv builds an insert from either document form: a build
// configuration carries a dblpancakes mapping, a serialized insert carries
// the stack as a sequence.
func structConv(m map[string]any) (*hts.Insert, error) {
	if v, ok := m["dblpancakes"]; ok {
		if _, isMapping := v.(map[string]any); isMapping {
			name := "insert"
			if raw, ok := m["name"]; ok {
				if n, err := codec.String(raw); err == nil && n != "" {
					name = n
				}
			}
			return hts.FromConfig(name, m)
		}
	}
	return hts.InsertConv(m)
}

// Insert resolves the detailed structure. A supra without one yields nil.
func (s *Supra) Insert(load codec.LoadFunc) (*hts.Insert, error) {
	if s.Struct.IsZero() {
		return nil, nil
	}
	return s.Struct.Resolve(structConv, load)
}

// CheckDimensions syncs the envelope with the resolved insert. The insert is
// authoritative: r, z and the turn count are overwritten when they drift
// beyond tolerance. Reports whether anything changed.
func (s *Supra) CheckDimensions(load codec.LoadFunc) (bool, error) {
	ins, err := s.Insert(load)
	if err != nil {
		return false, err
	}
	if ins == nil {
		return false, nil
	}

	changed := false
	if !scalar.EqualWithinAbs(s.R[0], ins.R0, dimTol) {
		s.R[0] = ins.R0
		changed = true
	}
	if !scalar.EqualWithinAbs(s.R[1], ins.R1, dimTol) {
		s.R[1] = ins.R1
		changed = true
	}
	z0 := ins.Z0 - ins.H/2
	z1 := ins.Z0 + ins.H/2
	if !scalar.EqualWithinAbs(s.Z[0], z0, dimTol) {
		s.Z[0] = z0
		changed = true
	}
	if !scalar.EqualWithinAbs(s.Z[1], z1, dimTol) {
		s.Z[1] = z1
		changed = true
	}
	if n := ins.TotalTapes(); s.N != n {
		s.N = n
		changed = true
	}
	if changed {
		slog.Info("supra dimensions updated from insert", "name", s.Name)
	}
	return changed, nil
}

// Bounds returns the radial and axial extent.
func (s *Supra) Bounds() ([2]float64, [2]float64, error) {
	if s.R[1] <= s.R[0] || s.Z[1] <= s.Z[0] {
		return [2]float64{}, [2]float64{}, fmt.Errorf("supra %q has unset bounds", s.Name)
	}
	return s.R, s.Z, nil
}

// Intersects reports whether the component overlaps the given r/z rectangle.
func (s *Supra) Intersects(r, z [2]float64) bool {
	return s.R[0] < r[1] && r[0] < s.R[1] && s.Z[0] < z[1] && z[0] < s.Z[1]
}

// Nturns is the tape count of the insert when present, the envelope turn
// count otherwise.
func (s *Supra) Nturns(load codec.LoadFunc) int {
	ins, err := s.Insert(load)
	if err != nil || ins == nil {
		return s.N
	}
	return ins.TotalTapes()
}

// Insulators returns the insulator material and count at the current detail
// level. Without a detailed structure the magnet is one insulated block.
func (s *Supra) Insulators(load codec.LoadFunc) (string, int) {
	if s.Detail == support.DetailNone {
		return "Insulation", 1
	}
	ins, err := s.Insert(load)
	if err != nil || ins == nil {
		return "Insulation", 1
	}
	count := 0
	for _, name := range ins.Names("", s.Detail) {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "insul") || strings.Contains(lower, "iso") {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return "StructuralInsulation", count
}

// CharacteristicLength is the mesh sizing hint.
func (s *Supra) CharacteristicLength() float64 {
	if s.Detail == support.DetailNone {
		return (s.R[1] - s.R[0]) / 5
	}
	return (s.R[1] - s.R[0]) / 10
}

// Names lists the region names. At detail None the magnet is a single
// region; deeper levels delegate to the insert after syncing dimensions.
func (s *Supra) Names(prefix string, load codec.LoadFunc) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	if s.Detail == support.DetailNone {
		return []string{base + s.Name}
	}
	ins, err := s.Insert(load)
	if err != nil || ins == nil {
		return []string{base + s.Name}
	}
	if _, err := s.CheckDimensions(load); err != nil {
		return []string{base + s.Name}
	}
	return ins.Names(prefix, s.Detail)
}

func (s *Supra) Classname() string { return "Supra" }

func (s *Supra) ToMap() map[string]any {
	m := map[string]any{
		"name":   s.Name,
		"r":      codec.PairAny(s.R),
		"z":      codec.PairAny(s.Z),
		"n":      s.N,
		"detail": string(s.Detail),
	}
	if !s.Struct.IsZero() {
		m["struct"] = s.Struct
	}
	return m
}

func SupraFromMap(d map[string]any) (any, error) {
	s := &Supra{Detail: support.DetailNone}
	var err error
	if s.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if s.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if s.Z, err = codec.Pair(d["z"]); err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}
	if v, ok := d["n"]; ok {
		if s.N, err = codec.Int(v); err != nil {
			return nil, fmt.Errorf("n: %w", err)
		}
	}
	if v, ok := d["detail"]; ok {
		raw, err := codec.String(v)
		if err != nil {
			return nil, fmt.Errorf("detail: %w", err)
		}
		s.Detail = support.Detail(raw)
	}
	if v, ok := d["struct"]; ok && v != nil {
		s.Struct = codec.RawRef[*hts.Insert](v)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
