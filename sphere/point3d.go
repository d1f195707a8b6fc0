// =======================
// sphere/point3d.go
// =======================

package sphere

import "math"

// Point3D holds a 3D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Rotate rotates around X, Y, Z axes using proper rotation matrices.
func (p Point3D) Rotate(ax, ay, az float64) Point3D {
	return p.RotateX(ax).RotateY(ay).RotateZ(az)
}

// RotateX rotates p around the X axis by a radians.
func (p Point3D) RotateX(a float64) Point3D {
	c, s := math.Cos(a), math.Sin(a)
	return Point3D{X: p.X, Y: p.Y*c - p.Z*s, Z: p.Y*s + p.Z*c}
}

// RotateY rotates p around the Y axis by a radians.
func (p Point3D) RotateY(a float64) Point3D {
	c, s := math.Cos(a), math.Sin(a)
	return Point3D{X: p.X*c + p.Z*s, Y: p.Y, Z: -p.X*s + p.Z*c}
}

// RotateZ rotates p around the Z axis by a radians.
func (p Point3D) RotateZ(a float64) Point3D {
	c, s := math.Cos(a), math.Sin(a)
	return Point3D{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c, Z: p.Z}
}

func (p Point3D) Scale(k float64) Point3D {
	return Point3D{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point3D) Dot(q Point3D) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Len returns the Euclidean distance from the origin.
func (p Point3D) Len() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns the unit vector along p, or p itself when it is zero.
func (p Point3D) Normalize() Point3D {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Array returns the coordinates as an [x, y, z] triple.
func (p Point3D) Array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}
