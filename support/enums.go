package support

import "github.com/Trophime/magnetgeo-claude/internal/validate"

// Side names an axial end of a component: HP is the high-pressure end, BP the
// low-pressure end.
type Side string

const (
	SideHP Side = "HP"
	SideBP Side = "BP"
)

func (s Side) Validate() error {
	return validate.OneOf("Side", "side", string(s), string(SideHP), string(SideBP))
}

// RadialSide names the inner or outer cylindrical surface.
type RadialSide string

const (
	RadialInner RadialSide = "rint"
	RadialOuter RadialSide = "rext"
)

func (s RadialSide) Validate() error {
	return validate.OneOf("RadialSide", "rside", string(s), string(RadialInner), string(RadialOuter))
}

// ShapePosition places a cut pattern relative to the winding.
type ShapePosition string

const (
	PositionAbove     ShapePosition = "ABOVE"
	PositionBelow     ShapePosition = "BELOW"
	PositionAlternate ShapePosition = "ALTERNATE"
)

func (p ShapePosition) Validate() error {
	return validate.OneOf("ShapePosition", "position", string(p),
		string(PositionAbove), string(PositionBelow), string(PositionAlternate))
}

// ProbeType classifies instrumentation probes.
type ProbeType string

const (
	ProbeVoltageTaps   ProbeType = "voltage_taps"
	ProbeTemperature   ProbeType = "temperature"
	ProbeMagneticField ProbeType = "magnetic_field"
)

func (p ProbeType) Validate() error {
	return validate.OneOf("Probe", "probe_type", string(p),
		string(ProbeVoltageTaps), string(ProbeTemperature), string(ProbeMagneticField))
}

// Detail selects how deep structure drill-down goes when naming regions.
type Detail string

const (
	DetailNone       Detail = "None"
	DetailDblPancake Detail = "dblpancake"
	DetailPancake    Detail = "pancake"
	DetailTurn       Detail = "turn"
	DetailTape       Detail = "tape"
)

func (d Detail) Validate() error {
	return validate.OneOf("Supra", "detail", string(d),
		string(DetailNone), string(DetailDblPancake), string(DetailPancake),
		string(DetailTurn), string(DetailTape))
}
