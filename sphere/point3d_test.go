package sphere

import (
	"math"
	"testing"
)

func near(a, b Point3D) bool {
	return a.Sub(b).Len() < 1e-12
}

func TestRotateY(t *testing.T) {
	p := Point3D{X: 1}
	got := p.RotateY(math.Pi / 2)
	want := Point3D{Z: -1}
	if !near(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	p := Point3D{X: 1.5, Y: -0.3, Z: 0.8}
	r := p.Rotate(0.4, 1.1, -2.3)
	if math.Abs(p.Len()-r.Len()) > 1e-12 {
		t.Errorf("Expected length %v, got %v", p.Len(), r.Len())
	}
}

func TestRotateMatchesAxisOrder(t *testing.T) {
	p := Point3D{X: 0.2, Y: 0.7, Z: -1.1}
	got := p.Rotate(0.3, 0.5, 0.7)
	want := p.RotateX(0.3).RotateY(0.5).RotateZ(0.7)
	if !near(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestNormalize(t *testing.T) {
	if got := (Point3D{X: 3, Y: 4}).Normalize(); !near(got, Point3D{X: 0.6, Y: 0.8}) {
		t.Errorf("Expected unit vector, got %+v", got)
	}
	if got := (Point3D{}).Normalize(); got != (Point3D{}) {
		t.Errorf("Expected zero vector unchanged, got %+v", got)
	}
}
