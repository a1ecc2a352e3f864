package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trophime/magnetgeo-claude/codec"
)

func square(t *testing.T) *Shape2D {
	t.Helper()
	s, err := New("sq", [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	require.NoError(t, err)
	return s
}

func TestShoelaceArea(t *testing.T) {
	assert.InDelta(t, 4.0, square(t).Area(), 1e-12)

	// winding order must not matter
	rev, err := New("rev", [][2]float64{{0, 2}, {2, 2}, {2, 0}, {0, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rev.Area(), 1e-12)
}

func TestPerimeterClosesPolygon(t *testing.T) {
	assert.InDelta(t, 8.0, square(t).Perimeter(), 1e-12)
}

func TestEquivalentDiameter(t *testing.T) {
	// for a square of side a, 4A/P = a
	assert.InDelta(t, 2.0, square(t).EquivalentDiameter(), 1e-12)

	circle, err := Circle("c", 3.0, 256)
	require.NoError(t, err)
	// hydraulic diameter of a circle is its diameter
	assert.InDelta(t, 6.0, circle.EquivalentDiameter(), 1e-2)
}

func TestBounds(t *testing.T) {
	s := square(t).Translate(1, -1)
	xb, yb, err := s.Bounds()
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 3}, xb)
	assert.Equal(t, [2]float64{-1, 1}, yb)
}

func TestTranslateScaleCopy(t *testing.T) {
	s := square(t)
	moved := s.Translate(10, 0)
	assert.Equal(t, [2]float64{0, 0}, s.Pts[0], "translate must not mutate the receiver")
	assert.Equal(t, [2]float64{10, 0}, moved.Pts[0])

	scaled := s.Scale(0.5, 0.5)
	assert.InDelta(t, 1.0, scaled.Area(), 1e-12)
	assert.Equal(t, [2]float64{2, 2}, s.Pts[2], "scale must not mutate the receiver")
}

func TestScaleAnisotropic(t *testing.T) {
	s := square(t).Scale(3, 0.5)
	assert.InDelta(t, 6.0, s.Area(), 1e-12)
	xb, yb, err := s.Bounds()
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 6}, xb)
	assert.Equal(t, [2]float64{0, 1}, yb)
}

func TestCentroid(t *testing.T) {
	x, y := square(t).Centroid()
	assert.InDelta(t, 1.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)

	x, y = square(t).Translate(5, -3).Centroid()
	assert.InDelta(t, 6.0, x, 1e-12)
	assert.InDelta(t, -2.0, y, 1e-12)

	var empty Shape2D
	x, y = empty.Centroid()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestIsClockwise(t *testing.T) {
	ccw := square(t)
	assert.False(t, ccw.IsClockwise())

	cw, err := New("cw", [][2]float64{{0, 2}, {2, 2}, {2, 0}, {0, 0}})
	require.NoError(t, err)
	assert.True(t, cw.IsClockwise())

	var empty Shape2D
	assert.False(t, empty.IsClockwise())
}

func TestValidateRejectsDegenerate(t *testing.T) {
	_, err := New("line", [][2]float64{{0, 0}, {1, 1}})
	assert.Error(t, err)

	_, err = New("flat", [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	assert.Error(t, err, "collinear vertices enclose no area")
}

func TestAnnularSector(t *testing.T) {
	s, err := AnnularSector("sector", 10, 12, 90, 64)
	require.NoError(t, err)
	want := math.Pi / 4 * (12*12 - 10*10)
	assert.InDelta(t, want, s.Area(), want*1e-3)
}

func TestRoundTrip(t *testing.T) {
	reg := codec.NewRegistry()
	reg.Register("Shape2D", FromMap)

	orig := square(t)
	data, err := codec.Marshal(codec.Encode(orig), codec.FormatJSON)
	require.NoError(t, err)
	tree, err := codec.Unmarshal(data, codec.FormatJSON)
	require.NoError(t, err)
	back, err := reg.Decode(tree)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}
