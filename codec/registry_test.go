package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name string
	Size float64
}

func (w *widget) Classname() string { return "Widget" }

func (w *widget) ToMap() map[string]any {
	return map[string]any{"name": w.Name, "size": w.Size}
}

func widgetFromMap(m map[string]any) (any, error) {
	name, err := String(m["name"])
	if err != nil {
		return nil, err
	}
	size, err := Float(m["size"])
	if err != nil {
		return nil, err
	}
	return &widget{Name: name, Size: size}, nil
}

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("Widget", widgetFromMap)
	return reg
}

func TestDecode_TaggedMapping(t *testing.T) {
	reg := testRegistry()
	v, err := reg.Decode(map[string]any{
		Discriminant: "Widget",
		"name":       "w1",
		"size":       2.5,
	})
	require.NoError(t, err)
	w, ok := v.(*widget)
	require.True(t, ok)
	assert.Equal(t, "w1", w.Name)
	assert.Equal(t, 2.5, w.Size)
}

func TestDecode_UnknownTypeKeepsMapping(t *testing.T) {
	reg := testRegistry()
	v, err := reg.Decode(map[string]any{
		Discriminant: "FutureType",
		"x":          1,
	})
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok, "unknown types must pass through as mappings")
	assert.Equal(t, "FutureType", m[Discriminant])
	assert.Equal(t, 1, m["x"])
}

func TestDecode_NestedBottomUp(t *testing.T) {
	reg := testRegistry()
	v, err := reg.Decode(map[string]any{
		"outer": []any{
			map[string]any{Discriminant: "Widget", "name": "a", "size": 1},
		},
	})
	require.NoError(t, err)
	m := v.(map[string]any)
	seq := m["outer"].([]any)
	_, ok := seq[0].(*widget)
	assert.True(t, ok, "nested tagged mappings decode before their parent")
}

func TestDecode_FactoryErrorPropagates(t *testing.T) {
	reg := testRegistry()
	_, err := reg.Decode(map[string]any{
		Discriminant: "Widget",
		"name":       42, // wrong type
		"size":       1.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build Widget")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	reg := testRegistry()
	orig := &widget{Name: "rt", Size: 3.25}

	tree := Encode(orig)
	m, ok := tree.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Widget", m[Discriminant])

	back, err := reg.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestEncode_ForeignMappingRoundTrips(t *testing.T) {
	reg := testRegistry()
	raw := map[string]any{Discriminant: "FutureType", "x": 1}

	dec, err := reg.Decode(raw)
	require.NoError(t, err)
	enc := Encode(dec).(map[string]any)
	assert.Equal(t, "FutureType", enc[Discriminant])
	assert.Equal(t, 1, enc["x"])
}

func TestMarshalUnmarshal_BothFormats(t *testing.T) {
	reg := testRegistry()
	orig := &widget{Name: "fmt", Size: 1.5}

	for _, format := range []Format{FormatYAML, FormatJSON} {
		data, err := Marshal(Encode(orig), format)
		require.NoError(t, err)
		tree, err := Unmarshal(data, format)
		require.NoError(t, err)
		back, err := reg.Decode(tree)
		require.NoError(t, err)
		assert.Equal(t, orig, back)
	}
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
		"a.json": FormatJSON,
	} {
		got, err := FormatFor(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatFor("a.txt")
	assert.Error(t, err)
}
