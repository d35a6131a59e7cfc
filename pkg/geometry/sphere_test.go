package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

func testSphere(center core.Vec3, radius float64) *Sphere {
	return NewSphere(center, radius, core.NewVec3(0, 0, 0),
		material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
}

func TestSphere_Intersect_ThroughCenter(t *testing.T) {
	// Ray through the sphere center from distance d hits at d - radius
	s := testSphere(core.NewVec3(0, 0, -10), 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("expected hit through center")
	}
	if math.Abs(dist-8.0) > 1e-9 {
		t.Errorf("hit distance: got %v, expected 8", dist)
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	s := testSphere(core.NewVec3(0, 10, -10), 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := s.Intersect(ray); ok {
		t.Error("expected miss for ray outside bounding region")
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	// Sphere entirely behind the ray origin is not hit
	s := testSphere(core.NewVec3(0, 0, 10), 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := s.Intersect(ray); ok {
		t.Error("expected miss for sphere behind ray")
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	// A ray starting at the center exits at the far surface
	s := testSphere(core.NewVec3(0, 0, 0), 3)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	dist, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("expected hit from inside")
	}
	if math.Abs(dist-3.0) > 1e-9 {
		t.Errorf("hit distance from center: got %v, expected 3", dist)
	}
}

func TestSphere_Intersect_SelfIntersectionEpsilon(t *testing.T) {
	// A ray leaving the surface outward does not re-hit its own sphere
	s := testSphere(core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))

	if _, ok := s.Intersect(ray); ok {
		t.Error("expected no self-intersection for outward ray at surface")
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s := testSphere(core.NewVec3(1, 2, 3), 5)
	point := core.NewVec3(6, 2, 3) // On the +x side

	normal := s.NormalAt(point)
	if normal.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("normal: got %v, expected (1,0,0)", normal)
	}
}
