// Package magnetgeo is a data model for high field magnet geometries. It
// covers the magnet components themselves (helices, Bitter stacks,
// superconducting inserts), the structural parts around them and the
// supporting descriptors, together with a tagged YAML/JSON codec that keeps
// documents round-trippable even when they carry unknown component types.
package magnetgeo

import (
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/geom"
	"github.com/Trophime/magnetgeo-claude/hts"
	"github.com/Trophime/magnetgeo-claude/magnet"
	"github.com/Trophime/magnetgeo-claude/structural"
	"github.com/Trophime/magnetgeo-claude/support"
)

// DefaultRegistry returns a registry with every component type registered
// under its document tag.
func DefaultRegistry() *codec.Registry {
	reg := codec.NewRegistry()

	reg.Register("Helix", magnet.HelixFromMap)
	reg.Register("Bitter", magnet.BitterFromMap)
	reg.Register("Supra", magnet.SupraFromMap)

	reg.Register("Ring", structural.RingFromMap)
	reg.Register("Screen", structural.ScreenFromMap)
	reg.Register("InnerCurrentLead", structural.InnerCurrentLeadFromMap)
	reg.Register("OuterCurrentLead", structural.OuterCurrentLeadFromMap)

	reg.Register("Tape", hts.TapeFromMap)
	reg.Register("Pancake", hts.PancakeFromMap)
	reg.Register("Isolation", hts.IsolationFromMap)
	reg.Register("DblPancake", hts.DblPancakeFromMap)
	reg.Register("HTSinsert", hts.InsertFromMap)

	reg.Register("ModelAxi", support.ModelAxiFromMap)
	reg.Register("Model3D", support.Model3DFromMap)
	reg.Register("Shape", support.ShapeFromMap)
	reg.Register("Chamfer", support.ChamferFromMap)
	reg.Register("Groove", support.GrooveFromMap)
	reg.Register("CoolingSlit", support.CoolingSlitFromMap)
	reg.Register("Tierod", support.TierodFromMap)
	reg.Register("Probe", support.ProbeFromMap)

	reg.Register("Shape2D", geom.FromMap)

	return reg
}

// NewLoader resolves sidecar references against the given directory on the
// local filesystem.
func NewLoader(dir string) *codec.Loader {
	return &codec.Loader{FS: osfs.New(dir), Dir: ".", Registry: DefaultRegistry()}
}

// Load reads and decodes one geometry document from the local filesystem.
func Load(path string) (any, error) {
	return codec.ReadFile(osfs.New("."), path, DefaultRegistry())
}

// Save encodes a component and writes it out, format chosen from the
// extension.
func Save(path string, v any) error {
	return codec.WriteFile(osfs.New("."), path, v)
}
