package hts

import (
	"fmt"
	"sort"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
	"github.com/Trophime/magnetgeo-claude/support"
)

// Insert is the full HTS stack: N double pancakes separated by isolation
// layers, centered at Z0. The derived fields H, R0, R1 and Z1 are kept
// consistent with the stack by the layout pass.
type Insert struct {
	Name        string
	Z0          float64
	H           float64
	R0          float64
	R1          float64
	Z1          float64
	N           int
	DblPancakes []*DblPancake
	Isolations  []*Isolation
}

func (ins *Insert) Validate() error {
	if err := validate.NotEmpty("Insert", "name", ins.Name); err != nil {
		return err
	}
	if len(ins.DblPancakes) > 0 {
		if err := validate.OrderedPair("Insert", "r", [2]float64{ins.R0, ins.R1}); err != nil {
			return err
		}
	}
	if len(ins.Isolations) > len(ins.DblPancakes) {
		return &validate.FieldError{Type: "Insert", Field: "isolations",
			Msg: fmt.Sprintf("%d separators for %d double pancakes", len(ins.Isolations), len(ins.DblPancakes))}
	}
	for i, dp := range ins.DblPancakes {
		if err := dp.Validate(); err != nil {
			return fmt.Errorf("dblpancake %d: %w", i, err)
		}
	}
	for i, iso := range ins.Isolations {
		if err := iso.Validate(); err != nil {
			return fmt.Errorf("isolation %d: %w", i, err)
		}
	}
	return nil
}

// Z2 is the top of the insert.
func (ins *Insert) Z2() float64 { return ins.Z1 + ins.H }

// Width is the radial extent.
func (ins *Insert) Width() float64 { return ins.R1 - ins.R0 }

// Bounds returns the radial and axial extent of the stack.
func (ins *Insert) Bounds() ([2]float64, [2]float64, error) {
	if len(ins.DblPancakes) == 0 {
		return [2]float64{}, [2]float64{}, fmt.Errorf("insert %q has no double pancakes", ins.Name)
	}
	return [2]float64{ins.R0, ins.R1}, [2]float64{ins.Z1, ins.Z2()}, nil
}

// TapeCounts returns the turn count per double pancake, both pancakes counted.
func (ins *Insert) TapeCounts() []int {
	counts := make([]int, len(ins.DblPancakes))
	for i, dp := range ins.DblPancakes {
		counts[i] = 2 * dp.Pancake.NTapes
	}
	return counts
}

// TotalTapes sums TapeCounts.
func (ins *Insert) TotalTapes() int {
	total := 0
	for _, n := range ins.TapeCounts() {
		total += n
	}
	return total
}

// Names drills the stack down to the requested detail level. Double pancakes
// are named dp{i}, the separators between them iso{i}.
func (ins *Insert) Names(prefix string, detail support.Detail) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	var names []string
	last := len(ins.DblPancakes) - 1
	for i, dp := range ins.DblPancakes {
		names = append(names, dp.Names(fmt.Sprintf("%sdp%d", base, i), detail)...)
		if i < last && i < len(ins.Isolations) {
			if iso := ins.Isolations[i]; !iso.IsEmpty() {
				names = append(names, iso.Names(fmt.Sprintf("%siso%d", base, i))...)
			}
		}
	}
	return names
}

// relayout recomputes the derived geometry from the stack: total height, z
// positions of each double pancake and the radial envelope.
func (ins *Insert) relayout() {
	h := 0.0
	last := len(ins.DblPancakes) - 1
	for i, dp := range ins.DblPancakes {
		h += dp.Height()
		if i < last && i < len(ins.Isolations) {
			h += ins.Isolations[i].Thickness()
		}
	}
	ins.H = h
	ins.Z1 = ins.Z0 - h/2
	ins.N = len(ins.DblPancakes)

	z := ins.Z1
	for i, dp := range ins.DblPancakes {
		dp.Z0 = z + dp.Height()/2
		z += dp.Height()
		if i < last && i < len(ins.Isolations) {
			z += ins.Isolations[i].Thickness()
		}
	}

	for i, dp := range ins.DblPancakes {
		if i == 0 {
			ins.R0, ins.R1 = dp.R0(), dp.R1()
			continue
		}
		ins.R0 = min(ins.R0, dp.R0())
		ins.R1 = max(ins.R1, dp.R1())
	}
}

// FromConfig assembles an insert from a build configuration: base tape,
// pancake and isolation definitions plus a dblpancakes section that is either
// uniform ({n: count}) or a per-name set of overrides.
func FromConfig(name string, data map[string]any) (*Insert, error) {
	basePancake := Pancake{}
	if v, ok := data["pancake"]; ok {
		m, err := codec.Mapping(v)
		if err != nil {
			return nil, fmt.Errorf("pancake: %w", err)
		}
		p, err := PancakeConv(m)
		if err != nil {
			return nil, fmt.Errorf("pancake: %w", err)
		}
		basePancake = *p
	}
	if v, ok := data["tape"]; ok {
		m, err := codec.Mapping(v)
		if err != nil {
			return nil, fmt.Errorf("tape: %w", err)
		}
		t, err := TapeConv(m)
		if err != nil {
			return nil, fmt.Errorf("tape: %w", err)
		}
		basePancake.Tape = *t
	}
	baseIsolation := Isolation{}
	if v, ok := data["isolation"]; ok {
		m, err := codec.Mapping(v)
		if err != nil {
			return nil, fmt.Errorf("isolation: %w", err)
		}
		iso, err := IsolationConv(m)
		if err != nil {
			return nil, fmt.Errorf("isolation: %w", err)
		}
		baseIsolation = *iso
	}

	ins := &Insert{Name: name}
	cfg, ok := data["dblpancakes"]
	if !ok {
		return nil, fmt.Errorf("config for %q has no dblpancakes section", name)
	}
	dpCfg, err := codec.Mapping(cfg)
	if err != nil {
		return nil, fmt.Errorf("dblpancakes: %w", err)
	}

	if rawN, ok := dpCfg["n"]; ok {
		// uniform stack
		n, err := codec.Int(rawN)
		if err != nil {
			return nil, fmt.Errorf("dblpancakes.n: %w", err)
		}
		sep := baseIsolation
		if v, ok := dpCfg["isolation"]; ok {
			m, err := codec.Mapping(v)
			if err != nil {
				return nil, fmt.Errorf("dblpancakes.isolation: %w", err)
			}
			s, err := IsolationConv(m)
			if err != nil {
				return nil, fmt.Errorf("dblpancakes.isolation: %w", err)
			}
			sep = *s
		}
		for i := 0; i < n; i++ {
			ins.DblPancakes = append(ins.DblPancakes, &DblPancake{
				Pancake:   basePancake,
				Isolation: baseIsolation,
			})
			if i < n-1 {
				s := sep
				ins.Isolations = append(ins.Isolations, &s)
			}
		}
	} else {
		// heterogeneous stack, one entry per double pancake name
		names := make([]string, 0, len(dpCfg))
		for key := range dpCfg {
			if key == "isolation" {
				continue
			}
			names = append(names, key)
		}
		sort.Strings(names)
		for i, dpName := range names {
			entry, err := codec.Mapping(dpCfg[dpName])
			if err != nil {
				return nil, fmt.Errorf("dblpancakes.%s: %w", dpName, err)
			}
			pancake := basePancake
			if v, ok := entry["pancake"]; ok {
				m, err := codec.Mapping(v)
				if err != nil {
					return nil, fmt.Errorf("dblpancakes.%s.pancake: %w", dpName, err)
				}
				p, err := PancakeConv(m)
				if err != nil {
					return nil, fmt.Errorf("dblpancakes.%s.pancake: %w", dpName, err)
				}
				pancake = *p
			}
			internal := baseIsolation
			if v, ok := entry["isolation"]; ok {
				m, err := codec.Mapping(v)
				if err != nil {
					return nil, fmt.Errorf("dblpancakes.%s.isolation: %w", dpName, err)
				}
				iso, err := IsolationConv(m)
				if err != nil {
					return nil, fmt.Errorf("dblpancakes.%s.isolation: %w", dpName, err)
				}
				internal = *iso
			}
			ins.DblPancakes = append(ins.DblPancakes, &DblPancake{
				Pancake:   pancake,
				Isolation: internal,
			})
			if i < len(names)-1 {
				s := baseIsolation
				ins.Isolations = append(ins.Isolations, &s)
			}
		}
	}

	ins.relayout()
	if err := ins.Validate(); err != nil {
		return nil, err
	}
	return ins, nil
}

func (ins *Insert) Classname() string { return "HTSinsert" }

func (ins *Insert) ToMap() map[string]any {
	dps := make([]any, len(ins.DblPancakes))
	for i, dp := range ins.DblPancakes {
		dps[i] = dp
	}
	isos := make([]any, len(ins.Isolations))
	for i, iso := range ins.Isolations {
		isos[i] = iso
	}
	return map[string]any{
		"name":        ins.Name,
		"z0":          ins.Z0,
		"h":           ins.H,
		"r0":          ins.R0,
		"r1":          ins.R1,
		"z1":          ins.Z1,
		"n":           ins.N,
		"dblpancakes": dps,
		"isolations":  isos,
	}
}

func InsertFromMap(d map[string]any) (any, error) {
	ins := &Insert{}
	var err error
	if v, ok := d["name"]; ok {
		if ins.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	for key, dst := range map[string]*float64{
		"z0": &ins.Z0, "h": &ins.H, "r0": &ins.R0, "r1": &ins.R1, "z1": &ins.Z1,
	} {
		if v, ok := d[key]; ok {
			if *dst, err = codec.Float(v); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	if v, ok := d["n"]; ok {
		if ins.N, err = codec.Int(v); err != nil {
			return nil, fmt.Errorf("n: %w", err)
		}
	}
	if v, ok := d["dblpancakes"]; ok && v != nil {
		seq, err := codec.Slice(v)
		if err != nil {
			return nil, fmt.Errorf("dblpancakes: %w", err)
		}
		for i, item := range seq {
			switch dp := item.(type) {
			case *DblPancake:
				ins.DblPancakes = append(ins.DblPancakes, dp)
			case map[string]any:
				built, err := DblPancakeConv(dp)
				if err != nil {
					return nil, fmt.Errorf("dblpancakes[%d]: %w", i, err)
				}
				ins.DblPancakes = append(ins.DblPancakes, built)
			default:
				return nil, fmt.Errorf("dblpancakes[%d]: unexpected type %T", i, item)
			}
		}
	}
	if v, ok := d["isolations"]; ok && v != nil {
		seq, err := codec.Slice(v)
		if err != nil {
			return nil, fmt.Errorf("isolations: %w", err)
		}
		for i, item := range seq {
			switch iso := item.(type) {
			case *Isolation:
				ins.Isolations = append(ins.Isolations, iso)
			case map[string]any:
				built, err := IsolationConv(iso)
				if err != nil {
					return nil, fmt.Errorf("isolations[%d]: %w", i, err)
				}
				ins.Isolations = append(ins.Isolations, built)
			default:
				return nil, fmt.Errorf("isolations[%d]: unexpected type %T", i, item)
			}
		}
	}
	if err := ins.Validate(); err != nil {
		return nil, err
	}
	return ins, nil
}

// InsertConv is the typed factory used for Ref resolution.
func InsertConv(d map[string]any) (*Insert, error) {
	v, err := InsertFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Insert), nil
}
