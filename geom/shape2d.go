// Package geom provides the 2D polygonal primitive used for cooling slit and
// tie rod cross sections.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Trophime/magnetgeo-claude/codec"
	"github.com/Trophime/magnetgeo-claude/internal/validate"
)

// Shape2D is a closed polygon in the xy plane. The closing edge from the last
// vertex back to the first is implicit.
type Shape2D struct {
	Name string
	Pts  [][2]float64
}

func New(name string, pts [][2]float64) (*Shape2D, error) {
	s := &Shape2D{Name: name, Pts: pts}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shape2D) Validate() error {
	if err := validate.NotEmpty("Shape2D", "name", s.Name); err != nil {
		return err
	}
	if len(s.Pts) < 3 {
		return &validate.FieldError{Type: "Shape2D", Field: "pts",
			Msg: fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(s.Pts))}
	}
	if s.Area() == 0 {
		return &validate.FieldError{Type: "Shape2D", Field: "pts", Msg: "polygon is degenerate, area is zero"}
	}
	return nil
}

// Area returns the enclosed surface via the shoelace formula, independent of
// vertex winding order.
func (s *Shape2D) Area() float64 {
	n := len(s.Pts)
	if n < 3 {
		return 0
	}
	terms := make([]float64, n)
	for i, p := range s.Pts {
		q := s.Pts[(i+1)%n]
		terms[i] = p[0]*q[1] - q[0]*p[1]
	}
	return math.Abs(floats.Sum(terms)) / 2
}

// Perimeter returns the total edge length, closing edge included.
func (s *Shape2D) Perimeter() float64 {
	n := len(s.Pts)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i, p := range s.Pts {
		q := s.Pts[(i+1)%n]
		total += math.Hypot(q[0]-p[0], q[1]-p[1])
	}
	return total
}

// EquivalentDiameter returns the hydraulic diameter 4A/P of the section.
func (s *Shape2D) EquivalentDiameter() float64 {
	p := s.Perimeter()
	if p == 0 {
		return 0
	}
	return 4 * s.Area() / p
}

// Centroid returns the vertex average of the polygon.
func (s *Shape2D) Centroid() (float64, float64) {
	n := len(s.Pts)
	if n == 0 {
		return 0, 0
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range s.Pts {
		xs[i], ys[i] = p[0], p[1]
	}
	return floats.Sum(xs) / float64(n), floats.Sum(ys) / float64(n)
}

// IsClockwise reports the vertex winding order via the signed shoelace sum.
func (s *Shape2D) IsClockwise() bool {
	n := len(s.Pts)
	if n < 3 {
		return false
	}
	signed := 0.0
	for i, p := range s.Pts {
		q := s.Pts[(i+1)%n]
		signed += (q[0] - p[0]) * (q[1] + p[1])
	}
	return signed > 0
}

// Bounds returns the axis-aligned extent as ([xmin, xmax], [ymin, ymax]).
func (s *Shape2D) Bounds() ([2]float64, [2]float64, error) {
	if len(s.Pts) == 0 {
		return [2]float64{}, [2]float64{}, fmt.Errorf("shape %q has no vertices", s.Name)
	}
	xs := make([]float64, len(s.Pts))
	ys := make([]float64, len(s.Pts))
	for i, p := range s.Pts {
		xs[i], ys[i] = p[0], p[1]
	}
	return [2]float64{floats.Min(xs), floats.Max(xs)},
		[2]float64{floats.Min(ys), floats.Max(ys)}, nil
}

// Translate returns a copy shifted by (dx, dy).
func (s *Shape2D) Translate(dx, dy float64) *Shape2D {
	pts := make([][2]float64, len(s.Pts))
	for i, p := range s.Pts {
		pts[i] = [2]float64{p[0] + dx, p[1] + dy}
	}
	return &Shape2D{Name: s.Name, Pts: pts}
}

// Scale returns a copy scaled about the origin, with independent x and y
// factors.
func (s *Shape2D) Scale(sx, sy float64) *Shape2D {
	pts := make([][2]float64, len(s.Pts))
	for i, p := range s.Pts {
		pts[i] = [2]float64{p[0] * sx, p[1] * sy}
	}
	return &Shape2D{Name: s.Name, Pts: pts}
}

func (s *Shape2D) Classname() string { return "Shape2D" }

func (s *Shape2D) ToMap() map[string]any {
	pts := make([]any, len(s.Pts))
	for i, p := range s.Pts {
		pts[i] = []any{p[0], p[1]}
	}
	return map[string]any{"name": s.Name, "pts": pts}
}

// FromMap builds a Shape2D from a decoded mapping.
func FromMap(m map[string]any) (any, error) {
	name, err := codec.String(m["name"])
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	seq, err := codec.Slice(m["pts"])
	if err != nil {
		return nil, fmt.Errorf("pts: %w", err)
	}
	pts := make([][2]float64, len(seq))
	for i, item := range seq {
		p, err := codec.Pair(item)
		if err != nil {
			return nil, fmt.Errorf("pts[%d]: %w", i, err)
		}
		pts[i] = p
	}
	return New(name, pts)
}

// Conv is FromMap with a typed return, for Ref resolution.
func Conv(m map[string]any) (*Shape2D, error) {
	v, err := FromMap(m)
	if err != nil {
		return nil, err
	}
	return v.(*Shape2D), nil
}
