package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trophime/magnetgeo-claude/codec"
)

func TestRingDefaultsAndNames(t *testing.T) {
	v, err := RingFromMap(map[string]any{
		"name": "R1", "r": []any{100.0, 120.0}, "z": []any{-10.0, 10.0},
	})
	require.NoError(t, err)
	r := v.(*Ring)

	assert.True(t, r.BPSide, "rings sit on the low pressure side unless stated")
	assert.Equal(t, []string{"M_R1_Ring"}, r.Names("M"))
	assert.InDelta(t, 2.0, r.CharacteristicLength(), 1e-12)
}

func TestRingRejectsUnorderedRadii(t *testing.T) {
	_, err := RingFromMap(map[string]any{
		"name": "bad", "r": []any{120.0, 100.0}, "z": []any{-10.0, 10.0},
	})
	assert.Error(t, err)
}

func TestScreenNames(t *testing.T) {
	v, err := ScreenFromMap(map[string]any{
		"name": "Ecran", "r": []any{300.0, 305.0}, "z": []any{-200.0, 200.0},
	})
	require.NoError(t, err)
	s := v.(*Screen)
	assert.Equal(t, []string{"Ecran_Screen"}, s.Names(""))
}

func TestInnerCurrentLead(t *testing.T) {
	v, err := InnerCurrentLeadFromMap(map[string]any{
		"name": "iL1", "r": []any{15.0, 25.0}, "h": 480.0,
		"holes":  []any{5.0, 10.0},
		"fillet": true,
	})
	require.NoError(t, err)
	l := v.(*InnerCurrentLead)

	assert.Equal(t, []string{"iL1_InnerCurrentLead"}, l.Names(""))
	assert.True(t, l.Fillet)
	assert.Equal(t, []float64{5, 10}, l.Holes)
}

func TestOuterCurrentLeadBarShape(t *testing.T) {
	_, err := OuterCurrentLeadFromMap(map[string]any{
		"name": "oL1", "r": []any{400.0, 420.0}, "h": 500.0,
		"bar": []any{410.0, 20.0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bar")

	v, err := OuterCurrentLeadFromMap(map[string]any{
		"name": "oL1", "r": []any{400.0, 420.0}, "h": 500.0,
		"bar":     []any{410.0, 20.0, 30.0, 100.0},
		"support": []any{10.0, 50.0, 45.0, 0.0},
	})
	require.NoError(t, err)
	l := v.(*OuterCurrentLead)
	assert.Equal(t, []string{"oL1_OuterCurrentLead"}, l.Names(""))
}

func TestStructuralRoundTrips(t *testing.T) {
	reg := codec.NewRegistry()
	reg.Register("Ring", RingFromMap)
	reg.Register("Screen", ScreenFromMap)
	reg.Register("InnerCurrentLead", InnerCurrentLeadFromMap)
	reg.Register("OuterCurrentLead", OuterCurrentLeadFromMap)

	ring := &Ring{Name: "R1", R: [2]float64{100, 120}, Z: [2]float64{-10, 10}, N: 8, Angle: 22.5, BPSide: true}
	screen := &Screen{Name: "Ecran", R: [2]float64{300, 305}, Z: [2]float64{-200, 200}}

	for _, v := range []codec.Encoder{ring, screen} {
		data, err := codec.Marshal(codec.Encode(v), codec.FormatJSON)
		require.NoError(t, err)
		tree, err := codec.Unmarshal(data, codec.FormatJSON)
		require.NoError(t, err)
		back, err := reg.Decode(tree)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}
