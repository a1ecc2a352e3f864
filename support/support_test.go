package support

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/geom"
)

func TestModelAxiCompact(t *testing.T) {
	m := &ModelAxi{
		H:     10,
		Turns: []float64{2, 3, 4},
		Pitch: []float64{1.0, 1.0, 2.0},
	}
	turns, pitch := m.Compact(CompactTol)
	assert.Equal(t, []float64{5, 4}, turns)
	assert.Equal(t, []float64{1.0, 2.0}, pitch)

	// the profile itself is untouched
	assert.Equal(t, []float64{2, 3, 4}, m.Turns)
}

func TestModelAxiCompactTolerance(t *testing.T) {
	m := &ModelAxi{
		Turns: []float64{1, 1},
		Pitch: []float64{1.0, 1.0 + 1e-8},
	}
	turns, _ := m.Compact(CompactTol)
	assert.Len(t, turns, 1, "pitches within relative tolerance merge")

	turns, _ = m.Compact(1e-12)
	assert.Len(t, turns, 2, "tighter tolerance keeps sections apart")
}

func TestModelAxiTotals(t *testing.T) {
	m := &ModelAxi{Turns: []float64{2, 3}, Pitch: []float64{1.5, 2.0}}
	assert.Equal(t, 5.0, m.TotalTurns())
	assert.InDelta(t, 2*1.5+3*2.0, m.TotalHeight(), 1e-12)
}

func TestModelAxiValidateParallelLists(t *testing.T) {
	m := &ModelAxi{Turns: []float64{1, 2}, Pitch: []float64{1}}
	assert.Error(t, m.Validate())
}

func TestChamferRoundTripKeepsUppercaseL(t *testing.T) {
	c := &Chamfer{Name: "ch", Side: SideHP, RSide: RadialInner, Alpha: 45, L: 2}
	m := codec.Encode(c).(map[string]any)
	assert.Contains(t, m, "L")
	assert.NotContains(t, m, "l")

	reg := codec.NewRegistry()
	reg.Register("Chamfer", ChamferFromMap)
	back, err := reg.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestChamferRejectsBadSide(t *testing.T) {
	_, err := ChamferFromMap(map[string]any{
		"side": "LP", "rside": "rint", "alpha": 45.0, "L": 2.0,
	})
	assert.Error(t, err)
}

func TestGrooveEmpty(t *testing.T) {
	var g *Groove
	assert.True(t, g.IsEmpty())
	assert.True(t, (&Groove{}).IsEmpty())
	assert.NoError(t, (&Groove{}).Validate())

	full := &Groove{GType: RadialOuter, N: 4, Eps: 0.2}
	assert.False(t, full.IsEmpty())
	assert.NoError(t, full.Validate())
}

func TestCoolingSlitShapeRef(t *testing.T) {
	fs := memfs.New()
	shapeDoc := "__classname__: Shape2D\nname: slot\npts:\n- [0, 0]\n- [1, 0]\n- [1, 2]\n- [0, 2]\n"
	require.NoError(t, util.WriteFile(fs, "geo/slot.yaml", []byte(shapeDoc), 0o644))

	reg := codec.NewRegistry()
	reg.Register("Shape2D", geom.FromMap)
	reg.Register("CoolingSlit", CoolingSlitFromMap)
	loader := &codec.Loader{FS: fs, Dir: "geo", Registry: reg}

	v, err := reg.Decode(map[string]any{
		codec.Discriminant: "CoolingSlit",
		"r":                38.6,
		"angle":            0.0,
		"n":                20,
		"dh":               0.0,
		"sh":               0.0,
		"shape":            "slot",
	})
	require.NoError(t, err)
	slit := v.(*CoolingSlit)

	// stored values are zero, so the shape supplies both
	assert.InDelta(t, 2.0, slit.SectionArea(loader.Func()), 1e-12)
	assert.InDelta(t, 4*2.0/6.0, slit.HydraulicDiameter(loader.Func()), 1e-12)
}

func TestCoolingSlitStoredValuesWin(t *testing.T) {
	slit := &CoolingSlit{R: 10, N: 2, Dh: 1.5, Sh: 3.0}
	assert.Equal(t, 1.5, slit.HydraulicDiameter(nil))
	assert.Equal(t, 3.0, slit.SectionArea(nil))
}

func TestProbeValidate(t *testing.T) {
	p := &Probe{Name: "t1", Type: ProbeTemperature, Position: [3]float64{10, 0, 90}}
	assert.NoError(t, p.Validate())

	bad := &Probe{Name: "x", Type: ProbeType("pressure")}
	assert.Error(t, bad.Validate())
}

func TestShapeDefaults(t *testing.T) {
	v, err := ShapeFromMap(map[string]any{"profile": "rounded"})
	require.NoError(t, err)
	s := v.(*Shape)
	assert.Equal(t, PositionAbove, s.Position)
	assert.Equal(t, 0.0, s.FirstAngle())
}
