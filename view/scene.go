// =======================
// view/scene.go
// =======================

// Package view draws the globe on a terminal screen and maps pointer cells
// back to point indices.
package view

import (
	"fmt"
	"math"

	"daysglobe/globe"
	"daysglobe/sphere"
)

const (
	groupScale     = 0.9
	labelOffset    = 1.1
	ambientLight   = 0.5
	meridians      = 12
	parallels      = 7
	ringResolution = 64
)

var lightPosition = sphere.Point3D{X: 10, Y: 10, Z: 10}

// Options tune the terminal rendering only; globe geometry is fixed.
type Options struct {
	AspectRatio float64
	Charset     string
	Labels      bool
}

// Scene holds the static geometry of one globe and the camera viewing it.
type Scene struct {
	Camera *Camera

	points  []sphere.Point
	labels  []string
	wire    [][]sphere.Point3D
	aspect  float64
	charset Charset
	labelOn bool
}

// Projected is a point as laid out on screen for one frame.
type Projected struct {
	Index          int
	X, Y           int
	Depth          float64
	Facing         bool
	Light          float64
	LabelX, LabelY int
}

// Layout is the result of projecting every point for one frame.
type Layout struct {
	Width, Height int
	Points        []Projected
}

// NewScene builds the wireframe and labels for points.
func NewScene(points []sphere.Point, opts Options) *Scene {
	if opts.AspectRatio <= 0 {
		opts.AspectRatio = 2
	}
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = fmt.Sprintf("Day %d", p.Index+1)
	}
	return &Scene{
		Camera:  NewCamera(),
		points:  points,
		labels:  labels,
		wire:    buildWireframe(globe.GlobeRadius),
		aspect:  opts.AspectRatio,
		charset: LookupCharset(opts.Charset),
		labelOn: opts.Labels,
	}
}

// ToggleLabels flips label drawing and returns the new setting.
func (sc *Scene) ToggleLabels() bool {
	sc.labelOn = !sc.labelOn
	return sc.labelOn
}

// Label returns the caption for the point at idx.
func (sc *Scene) Label(idx int) string {
	if idx < 0 || idx >= len(sc.labels) {
		return ""
	}
	return sc.labels[idx]
}

// buildWireframe returns latitude and longitude rings around the Y axis.
func buildWireframe(radius float64) [][]sphere.Point3D {
	var rings [][]sphere.Point3D
	for m := 0; m < meridians; m++ {
		lon := 2 * math.Pi * float64(m) / meridians
		ring := make([]sphere.Point3D, 0, ringResolution+1)
		for i := 0; i <= ringResolution; i++ {
			lat := math.Pi * (float64(i)/ringResolution - 0.5)
			ring = append(ring, sphere.Point3D{
				X: radius * math.Cos(lat) * math.Sin(lon),
				Y: radius * math.Sin(lat),
				Z: radius * math.Cos(lat) * math.Cos(lon),
			})
		}
		rings = append(rings, ring)
	}
	for p := 1; p <= parallels; p++ {
		lat := math.Pi * (float64(p)/(parallels+1) - 0.5)
		ring := make([]sphere.Point3D, 0, 2*ringResolution+1)
		for i := 0; i <= 2*ringResolution; i++ {
			lon := 2 * math.Pi * float64(i) / (2 * ringResolution)
			ring = append(ring, sphere.Point3D{
				X: radius * math.Cos(lat) * math.Sin(lon),
				Y: radius * math.Sin(lat),
				Z: radius * math.Cos(lat) * math.Cos(lon),
			})
		}
		rings = append(rings, ring)
	}
	return rings
}

// place turns a local globe position into world space for the given angle.
// The sphere mesh and the point set share this transform.
func place(p sphere.Point3D, angle float64) sphere.Point3D {
	return p.RotateY(angle).Scale(groupScale)
}

// lighting is the ambient term plus a Lambert term from the point light.
func lighting(world sphere.Point3D) float64 {
	n := world.Normalize()
	l := lightPosition.Sub(world).Normalize()
	return math.Min(1, ambientLight+math.Max(0, n.Dot(l))*(1-ambientLight))
}

func (sc *Scene) facing(world sphere.Point3D) bool {
	return world.Dot(sc.Camera.Position().Sub(world)) > 0
}

// Layout projects every point at the given rotation angle.
func (sc *Scene) Layout(angle float64, w, h int) Layout {
	out := Layout{Width: w, Height: h, Points: make([]Projected, 0, len(sc.points))}
	for _, p := range sc.points {
		world := place(p.Pos, angle)
		sx, sy, depth, ok := sc.Camera.Project(world, w, h, sc.aspect)
		if !ok {
			continue
		}
		lx, ly, _, _ := sc.Camera.Project(place(p.Pos.Scale(labelOffset), angle), w, h, sc.aspect)
		out.Points = append(out.Points, Projected{
			Index:  p.Index,
			X:      int(math.Floor(sx)),
			Y:      int(math.Floor(sy)),
			Depth:  depth,
			Facing: sc.facing(world),
			Light:  lighting(world),
			LabelX: int(math.Floor(lx)),
			LabelY: int(math.Floor(ly)),
		})
	}
	return out
}

// HitTest returns the index of the point drawn at cell (x, y), or globe.None.
// A point also answers for its immediate horizontal neighbours; the nearest
// point to the camera wins ties.
func (l Layout) HitTest(x, y int) int {
	best := globe.None
	bestDx, bestDepth := 2, math.Inf(1)
	for _, p := range l.Points {
		if p.Y != y {
			continue
		}
		dx := p.X - x
		if dx < 0 {
			dx = -dx
		}
		if dx > 1 {
			continue
		}
		if dx < bestDx || (dx == bestDx && p.Depth < bestDepth) {
			best, bestDx, bestDepth = p.Index, dx, p.Depth
		}
	}
	return best
}

// Find returns the projection of idx in this layout.
func (l Layout) Find(idx int) (Projected, bool) {
	for _, p := range l.Points {
		if p.Index == idx {
			return p, true
		}
	}
	return Projected{}, false
}
