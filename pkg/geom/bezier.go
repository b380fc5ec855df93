// pkg/geom/bezier.go
package geom

// Point is a 2D point in canvas coordinates.
type Point struct {
	X, Y float64
}

// CubicBezier holds the four control points of a cubic Bézier curve.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// At evaluates the curve at parameter t in [0, 1].
// At(0) returns P0 exactly and At(1) returns P3 exactly.
func (c CubicBezier) At(t float64) Point {
	u := 1 - t
	uu := u * u
	tt := t * t
	return Point{
		X: uu*u*c.P0.X + 3*uu*t*c.P1.X + 3*u*tt*c.P2.X + tt*t*c.P3.X,
		Y: uu*u*c.P0.Y + 3*uu*t*c.P1.Y + 3*u*tt*c.P2.Y + tt*t*c.P3.Y,
	}
}

// Sample evaluates the curve at steps+1 uniformly spaced parameter
// values from 0 to 1 inclusive.
func (c CubicBezier) Sample(steps int) []Point {
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, c.At(float64(i)/float64(steps)))
	}
	return pts
}
