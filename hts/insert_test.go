package hts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/support"
)

func TestPancakeOuterRadius(t *testing.T) {
	p := &Pancake{R0: 10, NTapes: 5, Tape: Tape{W: 3, H: 0.1, E: 0.3}}
	assert.InDelta(t, 26.5, p.R1(), 1e-12)
	assert.Equal(t, 0.1, p.Height())
}

func TestPancakeAcceptsLegacyTurnCountKey(t *testing.T) {
	v, err := PancakeFromMap(map[string]any{
		"r0": 10.0, "mandrin": 9.0, "n": 5,
		"tape": map[string]any{"w": 3.0, "h": 0.1, "e": 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, v.(*Pancake).NTapes)
}

func TestTapeFillingFactor(t *testing.T) {
	tape := &Tape{W: 3, H: 0.1, E: 1}
	assert.InDelta(t, 0.75, tape.FillingFactor(), 1e-12)
	assert.Equal(t, []string{"x_SC", "x_Insulation"}, tape.Names("x"))

	bare := &Tape{W: 3, H: 0.1}
	assert.Equal(t, []string{"x_SC"}, bare.Names("x"))
}

func TestIsolationEmptiness(t *testing.T) {
	assert.True(t, (&Isolation{}).IsEmpty())
	assert.True(t, (&Isolation{W: []float64{1}, H: []float64{0}}).IsEmpty())
	assert.True(t, (&Isolation{W: []float64{0}, H: []float64{1}}).IsEmpty())
	assert.False(t, (&Isolation{W: []float64{1}, H: []float64{0.3}}).IsEmpty())
}

func TestIsolationLengthMismatchTruncates(t *testing.T) {
	v, err := IsolationFromMap(map[string]any{
		"r0": 50.0,
		"w":  []any{44.0, 44.0},
		"h":  []any{0.3},
	})
	require.NoError(t, err, "length mismatch warns, never fails")
	iso := v.(*Isolation)
	assert.Len(t, iso.W, 1)
	assert.Len(t, iso.H, 1)
}

func TestDblPancakeHeight(t *testing.T) {
	dp := &DblPancake{
		Pancake:   Pancake{R0: 50, NTapes: 10, Tape: Tape{W: 4.0, H: 0.1, E: 0.4}},
		Isolation: Isolation{R0: 50, W: []float64{44}, H: []float64{0.1}},
	}
	assert.InDelta(t, 2*0.1+0.1, dp.Height(), 1e-12)
	assert.Equal(t, 50.0, dp.R0())
	assert.InDelta(t, 94.0, dp.R1(), 1e-12)
}

func uniformConfig() map[string]any {
	return map[string]any{
		"tape":      map[string]any{"w": 4.0, "h": 0.1, "e": 0.4},
		"pancake":   map[string]any{"r0": 50.0, "mandrin": 49.0, "ntapes": 10},
		"isolation": map[string]any{"r0": 50.0, "w": []any{44.0}, "h": []any{0.1}},
		"dblpancakes": map[string]any{
			"n":         3,
			"isolation": map[string]any{"r0": 50.0, "w": []any{44.0}, "h": []any{0.3}},
		},
	}
}

func TestFromConfigUniformLayout(t *testing.T) {
	ins, err := FromConfig("insert", uniformConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, ins.N)
	assert.Equal(t, 50.0, ins.R0)
	assert.InDelta(t, 94.0, ins.R1, 1e-12)

	// three double pancakes of height 0.3 with two 0.3 separators
	wantH := 3*(2*0.1+0.1) + 2*0.3
	assert.InDelta(t, wantH, ins.H, 1e-12)
	assert.InDelta(t, -wantH/2, ins.Z1, 1e-12)

	// stack positions are centered: first dp center sits half its height up
	require.Len(t, ins.DblPancakes, 3)
	assert.InDelta(t, ins.Z1+0.15, ins.DblPancakes[0].Z0, 1e-12)
	assert.InDelta(t, ins.Z1+0.15+0.3+0.3, ins.DblPancakes[1].Z0, 1e-12)

	// layout invariant: stack walked bottom to top lands on Z2
	top := ins.DblPancakes[2].Z2()
	assert.InDelta(t, ins.Z2(), top, 1e-12)

	assert.Equal(t, []int{20, 20, 20}, ins.TapeCounts())
	assert.Equal(t, 60, ins.TotalTapes())
}

func TestFromConfigPerNameOverrides(t *testing.T) {
	cfg := uniformConfig()
	cfg["dblpancakes"] = map[string]any{
		"dp0": map[string]any{},
		"dp1": map[string]any{
			"pancake": map[string]any{
				"r0": 48.0, "mandrin": 47.0, "ntapes": 12,
				"tape": map[string]any{"w": 4.0, "h": 0.1, "e": 0.4},
			},
		},
	}
	ins, err := FromConfig("insert", cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, ins.N)
	// radial envelope covers the widest pancake
	assert.Equal(t, 48.0, ins.R0)
	assert.InDelta(t, 48+12*4.4, ins.R1, 1e-12)
}

func TestInsertBoundsRequireStack(t *testing.T) {
	ins := &Insert{Name: "empty"}
	_, _, err := ins.Bounds()
	assert.Error(t, err)
}

func TestInsertNamesDrillDown(t *testing.T) {
	ins, err := FromConfig("insert", uniformConfig())
	require.NoError(t, err)

	dpLevel := ins.Names("m", support.DetailDblPancake)
	assert.Equal(t, []string{"m_dp0", "m_iso0", "m_dp1", "m_iso1", "m_dp2"}, dpLevel)

	pLevel := ins.Names("", support.DetailPancake)
	assert.Contains(t, pLevel, "dp0_p0")
	assert.Contains(t, pLevel, "dp0_isolation")
	assert.Contains(t, pLevel, "dp0_p1")

	tLevel := ins.Names("", support.DetailTape)
	assert.Contains(t, tLevel, "dp0_p0_Mandrel")
	assert.Contains(t, tLevel, "dp0_p0_Turn0_SC")
	assert.Contains(t, tLevel, "dp0_p0_Turn9_Insulation")
}

func TestPancakeNamesPerTurn(t *testing.T) {
	p := &Pancake{R0: 50, Mandrin: 49, NTapes: 3, Tape: Tape{W: 4.0, H: 0.1, E: 0.4}}

	// whole turns, no conductor/insulation split
	turns := p.Names("p0", support.DetailTurn)
	assert.Equal(t, []string{"p0_Mandrel", "p0_Turn0", "p0_Turn1", "p0_Turn2"}, turns)

	flush := &Pancake{R0: 50, Mandrin: 50, NTapes: 2, Tape: Tape{W: 4.0, H: 0.1, E: 0.4}}
	assert.Equal(t, []string{"p0_Turn0", "p0_Turn1"}, flush.Names("p0", support.DetailTurn))
}

func TestInsertRoundTrip(t *testing.T) {
	reg := codec.NewRegistry()
	reg.Register("HTSinsert", InsertFromMap)
	reg.Register("DblPancake", DblPancakeFromMap)
	reg.Register("Isolation", IsolationFromMap)
	reg.Register("Pancake", PancakeFromMap)
	reg.Register("Tape", TapeFromMap)

	orig, err := FromConfig("insert", uniformConfig())
	require.NoError(t, err)

	data, err := codec.Marshal(codec.Encode(orig), codec.FormatJSON)
	require.NoError(t, err)
	tree, err := codec.Unmarshal(data, codec.FormatJSON)
	require.NoError(t, err)
	back, err := reg.Decode(tree)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}
