package support

import (
	"fmt"

	"github.com/Trophime/magnetgeo-claude/codec"
)

// Model3D configures the CAD representation of a component. A helix with both
// shapes and channels is the high-resistance kind.
type Model3D struct {
	Name         string
	Cad          string
	WithShapes   bool
	WithChannels bool
}

func (m *Model3D) Validate() error { return nil }

func (m *Model3D) Classname() string { return "Model3D" }

func (m *Model3D) ToMap() map[string]any {
	return map[string]any{
		"name":          m.Name,
		"cad":           m.Cad,
		"with_shapes":   m.WithShapes,
		"with_channels": m.WithChannels,
	}
}

func Model3DFromMap(d map[string]any) (any, error) {
	m := &Model3D{}
	var err error
	if v, ok := d["name"]; ok {
		if m.Name, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if v, ok := d["cad"]; ok {
		if m.Cad, err = codec.String(v); err != nil {
			return nil, fmt.Errorf("cad: %w", err)
		}
	}
	if v, ok := d["with_shapes"]; ok {
		if m.WithShapes, err = codec.Bool(v); err != nil {
			return nil, fmt.Errorf("with_shapes: %w", err)
		}
	}
	if v, ok := d["with_channels"]; ok {
		if m.WithChannels, err = codec.Bool(v); err != nil {
			return nil, fmt.Errorf("with_channels: %w", err)
		}
	}
	return m, nil
}

func Model3DConv(d map[string]any) (*Model3D, error) {
	v, err := Model3DFromMap(d)
	if err != nil {
		return nil, err
	}
	return v.(*Model3D), nil
}
