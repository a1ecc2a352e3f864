package geom

import "math"

// Circle approximates a circle of radius r with an n-gon.
func Circle(name string, r float64, n int) (*Shape2D, error) {
	if n < 3 {
		n = 32
	}
	pts := make([][2]float64, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{r * math.Cos(theta), r * math.Sin(theta)}
	}
	return New(name, pts)
}

// Rectangle builds an axis-aligned w by h rectangle centered on the origin.
func Rectangle(name string, w, h float64) (*Shape2D, error) {
	hw, hh := w/2, h/2
	return New(name, [][2]float64{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	})
}

// AnnularSector builds a sector of an annulus between radii rint and rext
// spanning angleDeg degrees, discretized with n points per arc.
func AnnularSector(name string, rint, rext, angleDeg float64, n int) (*Shape2D, error) {
	if n < 2 {
		n = 16
	}
	rad := angleDeg * math.Pi / 180
	pts := make([][2]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		theta := rad * float64(i) / float64(n-1)
		pts = append(pts, [2]float64{rint * math.Cos(theta), rint * math.Sin(theta)})
	}
	for i := n - 1; i >= 0; i-- {
		theta := rad * float64(i) / float64(n-1)
		pts = append(pts, [2]float64{rext * math.Cos(theta), rext * math.Sin(theta)})
	}
	return New(name, pts)
}
