// =======================
// sphere/distribute.go
// =======================

package sphere

import "math"

// Point is one sample on the sphere surface. Index is its position in the
// distribution, in [0, n).
type Point struct {
	Index int        `json:"index"`
	Pos   Point3D    `json:"-"`
	XYZ   [3]float64 `json:"position"`
}

// Distribute spreads n points uniformly over a sphere of the given radius.
// The result is deterministic for a given (n, radius) pair. n <= 0 yields an
// empty slice.
func Distribute(n int, radius float64) []Point {
	if n <= 0 {
		return []Point{}
	}

	points := make([]Point, n)
	spiral := math.Sqrt(float64(n) * math.Pi)
	for i := 0; i < n; i++ {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := spiral * phi
		pos := Point3D{
			X: radius * math.Cos(theta) * math.Sin(phi),
			Y: radius * math.Sin(theta) * math.Sin(phi),
			Z: radius * math.Cos(phi),
		}
		points[i] = Point{Index: i, Pos: pos, XYZ: pos.Array()}
	}
	return points
}

// Positions returns just the coordinates of points, in index order.
func Positions(points []Point) []Point3D {
	out := make([]Point3D, len(points))
	for i, p := range points {
		out[i] = p.Pos
	}
	return out
}
