package codec

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetConv(m map[string]any) (*widget, error) {
	v, err := widgetFromMap(m)
	if err != nil {
		return nil, err
	}
	return v.(*widget), nil
}

func TestRef_TypedPassthrough(t *testing.T) {
	r := TypedRef(&widget{Name: "w"})
	assert.Equal(t, RefResolved, r.State())
	v, err := r.Resolve(widgetConv, nil)
	require.NoError(t, err)
	assert.Equal(t, "w", v.Name)
}

func TestRef_MappingResolvesOnce(t *testing.T) {
	r := RawRef[*widget](map[string]any{"name": "m", "size": 1.0})
	assert.Equal(t, RefUnresolved, r.State())

	v, err := r.Resolve(widgetConv, nil)
	require.NoError(t, err)
	assert.Equal(t, "m", v.Name)
	assert.Equal(t, RefResolved, r.State())

	// cached value, conv no longer consulted
	v2, err := r.Resolve(nil, nil)
	require.NoError(t, err)
	assert.Same(t, v, v2)
}

func TestRef_BasenameLoadsSidecar(t *testing.T) {
	fs := memfs.New()
	err := util.WriteFile(fs, "geo/probe1.yaml", []byte("__classname__: Widget\nname: probe1\nsize: 4.0\n"), 0o644)
	require.NoError(t, err)

	loader := &Loader{FS: fs, Dir: "geo", Registry: testRegistry()}
	r := RawRef[*widget]("probe1")

	v, err := r.Resolve(widgetConv, loader.Func())
	require.NoError(t, err)
	assert.Equal(t, "probe1", v.Name)
	assert.Equal(t, 4.0, v.Size)
}

func TestRef_ResolvedBasenameEncodesAsPath(t *testing.T) {
	fs := memfs.New()
	err := util.WriteFile(fs, "geo/w1.yaml", []byte("__classname__: Widget\nname: w1\nsize: 2.0\n"), 0o644)
	require.NoError(t, err)

	loader := &Loader{FS: fs, Dir: "geo", Registry: testRegistry()}
	r := RawRef[*widget]("w1")

	v, err := r.Resolve(widgetConv, loader.Func())
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Size)

	// the serialized form keeps the path so the sidecar stays shared
	// between parent files
	assert.Equal(t, "w1", Encode(r))
	assert.Equal(t, "w1", r.Raw())
}

func TestRef_FailureIsCachedAndKeepsRaw(t *testing.T) {
	fs := memfs.New()
	loader := &Loader{FS: fs, Dir: "geo", Registry: testRegistry()}
	r := RawRef[*widget]("missing")

	_, err := r.Resolve(widgetConv, loader.Func())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, RefFailed, r.State())
	assert.Equal(t, "missing", r.Raw(), "raw form stays accessible after failure")

	// second call reports the same failure without retrying
	_, err2 := r.Resolve(widgetConv, loader.Func())
	assert.Equal(t, err, err2)
}

func TestRef_ZeroResolvesToNil(t *testing.T) {
	var r Ref[*widget]
	assert.True(t, r.IsZero())
	v, err := r.Resolve(widgetConv, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRef_EncodePayload(t *testing.T) {
	typed := TypedRef(&widget{Name: "e", Size: 1})
	m := Encode(typed).(map[string]any)
	assert.Equal(t, "Widget", m[Discriminant])

	raw := RawRef[*widget]("sidecar")
	assert.Equal(t, "sidecar", Encode(raw))
}
