package magnetgeo

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/magnet"
	"github.com/Trophime/magnetgeo-claude/support"
)

const helixDoc = `
__classname__: Helix
name: H1
r: [19.3, 24.2]
z: [-180.0, 180.0]
cutwidth: 0.2
odd: true
dble: false
modelaxi:
  __classname__: ModelAxi
  name: H1
  h: 150.0
  turns: [10.0, 20.0, 10.0]
  pitch: [1.5, 1.5, 1.5]
`

func TestDefaultRegistryDecodesTaggedDocument(t *testing.T) {
	tree, err := codec.Unmarshal([]byte(helixDoc), codec.FormatYAML)
	require.NoError(t, err)

	v, err := DefaultRegistry().Decode(tree)
	require.NoError(t, err)

	h, ok := v.(*magnet.Helix)
	require.True(t, ok)
	assert.Equal(t, "H1", h.Name)
	assert.InDelta(t, 40.0, h.Nturns(nil), 1e-12)
}

func TestDefaultRegistryKeepsUnknownTypes(t *testing.T) {
	tree, err := codec.Unmarshal([]byte(`
__classname__: MSite
name: M19
magnets: [H1, Bext]
`), codec.FormatYAML)
	require.NoError(t, err)

	v, err := DefaultRegistry().Decode(tree)
	require.NoError(t, err, "unknown component types pass through untouched")

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MSite", m[codec.Discriminant])
	assert.Equal(t, "M19", m["name"])
}

func TestLoaderResolvesSidecars(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "geo/H1.yaml", []byte(helixDoc), 0o644))
	require.NoError(t, util.WriteFile(fs, "geo/HL-31.yaml", []byte(`
__classname__: ModelAxi
name: HL-31
h: 150.0
turns: [40.0]
pitch: [1.5]
`), 0o644))

	loader := &codec.Loader{FS: fs, Dir: "geo", Registry: DefaultRegistry()}

	v, err := loader.Load("H1")
	require.NoError(t, err)
	h := v.(*magnet.Helix)

	// swap the inline profile for a sidecar basename and resolve through fs
	h.ModelAxi = codec.RawRef[*support.ModelAxi]("HL-31")
	assert.InDelta(t, 40.0, h.Nturns(loader.Func()), 1e-12)

	_, err = loader.Load("missing")
	assert.ErrorIs(t, err, codec.ErrNotFound)
}

func TestRegistryNamesCoverEveryComponent(t *testing.T) {
	names := DefaultRegistry().Names()
	for _, want := range []string{
		"Helix", "Bitter", "Supra",
		"Ring", "Screen", "InnerCurrentLead", "OuterCurrentLead",
		"Tape", "Pancake", "Isolation", "DblPancake", "HTSinsert",
		"ModelAxi", "Model3D", "Shape", "Chamfer", "Groove",
		"CoolingSlit", "Tierod", "Probe", "Shape2D",
	} {
		assert.Contains(t, names, want)
	}
	assert.IsIncreasing(t, names, "Names is sorted for stable CLI output")
}
