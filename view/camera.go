// =======================
// view/camera.go
// =======================

package view

import (
	"math"

	"daysglobe/sphere"
)

const (
	defaultDistance = 5.0
	defaultFOV      = 45 * math.Pi / 180
	minDistance     = 3.0
	maxDistance     = 12.0
	maxPitch        = math.Pi/2 - 0.05
	nearPlane       = 0.1
)

// Camera is a perspective camera orbiting the origin. It has no pan.
type Camera struct {
	Yaw, Pitch float64
	Distance   float64
	FOV        float64 // vertical, radians
}

// NewCamera places the camera on +z looking at the origin.
func NewCamera() *Camera {
	return &Camera{Distance: defaultDistance, FOV: defaultFOV}
}

// Orbit turns the camera around the origin.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dpitch))
}

// Zoom scales the orbit distance; factors below 1 move closer.
func (c *Camera) Zoom(factor float64) {
	c.Distance = math.Max(minDistance, math.Min(maxDistance, c.Distance*factor))
}

// Reset restores the initial placement.
func (c *Camera) Reset() {
	*c = *NewCamera()
}

// toView moves a world point into camera space, camera at (0,0,Distance).
func (c *Camera) toView(p sphere.Point3D) sphere.Point3D {
	return p.RotateY(-c.Yaw).RotateX(-c.Pitch)
}

// Position returns the camera location in world space.
func (c *Camera) Position() sphere.Point3D {
	return sphere.Point3D{Z: c.Distance}.RotateX(c.Pitch).RotateY(c.Yaw)
}

// Project maps a world point onto a w x h cell grid whose cells are aspect
// times taller than wide. depth is the distance along the view axis.
func (c *Camera) Project(p sphere.Point3D, w, h int, aspect float64) (sx, sy, depth float64, ok bool) {
	v := c.toView(p)
	depth = c.Distance - v.Z
	if depth <= nearPlane {
		return 0, 0, 0, false
	}
	f := 1 / math.Tan(c.FOV/2)
	halfH := float64(h) / 2
	sx = float64(w)/2 + v.X*f/depth*halfH*aspect
	sy = halfH - v.Y*f/depth*halfH
	return sx, sy, depth, true
}
