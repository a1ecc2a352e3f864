package magnet

import (
	"fmt"
	"math"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
	"github.com/Trophime/magnetgeo-claude/support"
)

// Bitter is a stack of water cooled copper disks with radial cooling slits.
// The bore radii delimit the inner and outer cooling channels around the
// conductor itself.
type Bitter struct {
	Name         string
	R            [2]float64
	Z            [2]float64
	Odd          bool
	ModelAxi     codec.Ref[*support.ModelAxi]
	CoolingSlits []*support.CoolingSlit
	Tierod       *support.Tierod
	InnerBore    float64
	OuterBore    float64
}

// FlowParams carries the hydraulic description of every cooling channel, in
// radial order: inner bore, each slit, outer bore. Zh is the axial section
// grid shared by all channels.
type FlowParams struct {
	NSlits        int
	Dh            []float64
	Sh            []float64
	Zh            []float64
	FillingFactor []float64
}

func (b *Bitter) Validate() error {
	if err := validate.NotEmpty("Bitter", "name", b.Name); err != nil {
		return err
	}
	if err := validate.OrderedPair("Bitter", "r", b.R); err != nil {
		return err
	}
	if err := validate.OrderedPair("Bitter", "z", b.Z); err != nil {
		return err
	}
	if err := validate.Positive("Bitter", "innerbore", b.InnerBore); err != nil {
		return err
	}
	if err := validate.Positive("Bitter", "outerbore", b.OuterBore); err != nil {
		return err
	}
	if b.InnerBore >= b.OuterBore {
		return &validate.FieldError{Type: "Bitter", Field: "innerbore",
			Msg: fmt.Sprintf("%g must be less than outerbore %g", b.InnerBore, b.OuterBore)}
	}
	for i, slit := range b.CoolingSlits {
		if err := slit.Validate(); err != nil {
			return fmt.Errorf("coolingslit %d: %w", i, err)
		}
	}
	if b.Tierod != nil {
		if err := b.Tierod.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Bounds returns the radial and axial extent.
func (b *Bitter) Bounds() ([2]float64, [2]float64, error) {
	if b.R[1] <= b.R[0] || b.Z[1] <= b.Z[0] {
		return [2]float64{}, [2]float64{}, fmt.Errorf("bitter %q has unset bounds", b.Name)
	}
	return b.R, b.Z, nil
}

// Intersects reports whether the component overlaps the given r/z rectangle.
func (b *Bitter) Intersects(r, z [2]float64) bool {
	return b.R[0] < r[1] && r[0] < b.R[1] && b.Z[0] < z[1] && z[0] < b.Z[1]
}

// Nturns is the total turn count of the winding profile.
func (b *Bitter) Nturns(load codec.LoadFunc) float64 {
	axi := b.ModelAxi.Get(support.ModelAxiConv, load)
	if axi == nil {
		return 0
	}
	return axi.TotalTurns()
}

// Insulators returns the insulator material and count.
func (b *Bitter) Insulators() (string, int) { return "Kapton", 1 }

// EquivalentEps is the equivalent thickness of the annular ring occupied by
// slit i, n*sh spread over the circumference at the slit radius.
func (b *Bitter) EquivalentEps(i int) float64 {
	if i < 0 || i >= len(b.CoolingSlits) {
		return 0
	}
	slit := b.CoolingSlits[i]
	if slit.R == 0 {
		return 0
	}
	return float64(slit.N) * slit.Sh / (2 * math.Pi * slit.R)
}

// CharacteristicLength is the mesh sizing hint: a tenth of the radial width,
// refined to a fifth of the smallest slit spacing when slits are present.
func (b *Bitter) CharacteristicLength() float64 {
	lc := (b.R[1] - b.R[0]) / 10
	if len(b.CoolingSlits) == 0 {
		return lc
	}
	x := b.R[0]
	minDr := math.Inf(1)
	for _, slit := range b.CoolingSlits {
		minDr = math.Min(minDr, slit.R-x)
		x = slit.R
	}
	minDr = math.Min(minDr, b.R[1]-x)
	return minDr / 5
}

// Channels lists the cooling channel names in radial order: the inner bore,
// one channel per slit, then the outer bore.
func (b *Bitter) Channels(prefix string) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	n := len(b.CoolingSlits)
	channels := make([]string, 0, n+2)
	for i := 0; i <= n+1; i++ {
		channels = append(channels, fmt.Sprintf("%sSlit%d", base, i))
	}
	return channels
}

// Params assembles the hydraulic description of the cooling circuit. The tol
// guard keeps the axial grid free of duplicate points when the geometry ends
// exactly at the winding profile height.
func (b *Bitter) Params(load codec.LoadFunc) FlowParams {
	const tol = 1.0e-10

	p := FlowParams{NSlits: len(b.CoolingSlits)}

	// inner bore channel
	p.Dh = append(p.Dh, 2*(b.R[0]-b.InnerBore))
	p.Sh = append(p.Sh, math.Pi*(b.R[0]-b.InnerBore)*(b.R[0]+b.InnerBore))
	p.FillingFactor = append(p.FillingFactor, 1.0)

	for _, slit := range b.CoolingSlits {
		dh := slit.HydraulicDiameter(load)
		sh := slit.SectionArea(load)
		p.Dh = append(p.Dh, dh)
		p.Sh = append(p.Sh, float64(slit.N)*sh)
		ff := 1.0
		if dh > 0 && slit.R > 0 {
			ff = float64(slit.N) * (4 * sh / dh) / (4 * math.Pi * slit.R)
		}
		p.FillingFactor = append(p.FillingFactor, ff)
	}

	// outer bore channel
	p.Dh = append(p.Dh, 2*(b.OuterBore-b.R[1]))
	p.Sh = append(p.Sh, math.Pi*(b.OuterBore-b.R[1])*(b.OuterBore+b.R[1]))
	p.FillingFactor = append(p.FillingFactor, 1.0)

	p.Zh = append(p.Zh, b.Z[0])
	axi := b.ModelAxi.Get(support.ModelAxiConv, load)
	if axi != nil && len(axi.Turns) > 0 {
		z := -axi.H
		if math.Abs(b.Z[0]-z) >= tol {
			p.Zh = append(p.Zh, z)
		}
		for i, turns := range axi.Turns {
			z += turns * axi.Pitch[i]
			p.Zh = append(p.Zh, z)
		}
		if math.Abs(b.Z[1]-z) >= tol {
			p.Zh = append(p.Zh, b.Z[1])
		}
	} else {
		p.Zh = append(p.Zh, b.Z[1])
	}
	return p
}

// SectionNames lists the 2D sections, one block of slits per axial section.
// Extra B0 and B{n+1} blocks cover geometry extending past the winding
// profile height.
func (b *Bitter) SectionNames(prefix string, load codec.LoadFunc) []string {
	const tol = 1.0e-10
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	nSlits := len(b.CoolingSlits)
	var names []string

	axi := b.ModelAxi.Get(support.ModelAxiConv, load)
	if axi == nil || len(axi.Turns) == 0 {
		for i := 0; i <= nSlits; i++ {
			names = append(names, fmt.Sprintf("%sB_Slit%d", base, i))
		}
		return names
	}

	nsection := len(axi.Turns)
	if b.Z[0] < -axi.H && math.Abs(b.Z[0]+axi.H) >= tol {
		for i := 0; i <= nSlits; i++ {
			names = append(names, fmt.Sprintf("%sB0_Slit%d", base, i))
		}
	}
	for j := 1; j <= nsection; j++ {
		for i := 0; i <= nSlits; i++ {
			names = append(names, fmt.Sprintf("%sB%d_Slit%d", base, j, i))
		}
	}
	if b.Z[1] > axi.H && math.Abs(b.Z[1]-axi.H) >= tol {
		for i := 0; i <= nSlits; i++ {
			names = append(names, fmt.Sprintf("%sB%d_Slit%d", base, nsection+1, i))
		}
	}
	return names
}

// RegionNames lists the 3D regions: the conductor and its insulation.
func (b *Bitter) RegionNames(prefix string) []string {
	base := ""
	if prefix != "" {
		base = prefix + "_"
	}
	return []string{base + "B", base + "Kapton"}
}

func (b *Bitter) Classname() string { return "Bitter" }

func (b *Bitter) ToMap() map[string]any {
	m := map[string]any{
		"name":      b.Name,
		"r":         codec.PairAny(b.R),
		"z":         codec.PairAny(b.Z),
		"odd":       b.Odd,
		"innerbore": b.InnerBore,
		"outerbore": b.OuterBore,
	}
	if !b.ModelAxi.IsZero() {
		m["modelaxi"] = b.ModelAxi
	}
	if len(b.CoolingSlits) > 0 {
		slits := make([]any, len(b.CoolingSlits))
		for i, slit := range b.CoolingSlits {
			slits[i] = slit
		}
		m["coolingslits"] = slits
	}
	if b.Tierod != nil {
		m["tierod"] = b.Tierod
	}
	return m
}

func BitterFromMap(d map[string]any) (any, error) {
	b := &Bitter{}
	var err error
	if b.Name, err = codec.String(d["name"]); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if b.R, err = codec.Pair(d["r"]); err != nil {
		return nil, fmt.Errorf("r: %w", err)
	}
	if b.Z, err = codec.Pair(d["z"]); err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}
	if b.Odd, err = codec.Bool(d["odd"]); err != nil {
		return nil, fmt.Errorf("odd: %w", err)
	}
	if v, ok := d["innerbore"]; ok {
		if b.InnerBore, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("innerbore: %w", err)
		}
	}
	if v, ok := d["outerbore"]; ok {
		if b.OuterBore, err = codec.Float(v); err != nil {
			return nil, fmt.Errorf("outerbore: %w", err)
		}
	}
	if v, ok := d["modelaxi"]; ok && v != nil {
		b.ModelAxi = codec.RawRef[*support.ModelAxi](v)
	}
	if v, ok := d["coolingslits"]; ok && v != nil {
		seq, err := codec.Slice(v)
		if err != nil {
			return nil, fmt.Errorf("coolingslits: %w", err)
		}
		for i, item := range seq {
			switch slit := item.(type) {
			case *support.CoolingSlit:
				b.CoolingSlits = append(b.CoolingSlits, slit)
			case map[string]any:
				built, err := support.CoolingSlitConv(slit)
				if err != nil {
					return nil, fmt.Errorf("coolingslits[%d]: %w", i, err)
				}
				b.CoolingSlits = append(b.CoolingSlits, built)
			default:
				return nil, fmt.Errorf("coolingslits[%d]: unexpected type %T", i, item)
			}
		}
	}
	if v, ok := d["tierod"]; ok && v != nil {
		switch rod := v.(type) {
		case *support.Tierod:
			b.Tierod = rod
		case map[string]any:
			built, err := support.TierodConv(rod)
			if err != nil {
				return nil, fmt.Errorf("tierod: %w", err)
			}
			b.Tierod = built
		default:
			return nil, fmt.Errorf("tierod: unexpected type %T", v)
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
