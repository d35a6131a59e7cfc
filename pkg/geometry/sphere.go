package geometry

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Epsilon is the minimum accepted hit distance, rejecting self-intersections
// at the surface a ray originates from
const Epsilon = 1e-4

// Sphere is the scene primitive: a sphere with an emitted radiance and a
// shared reference to a BRDF. Immutable after scene construction.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Emission core.Vec3 // Emitted radiance, zero for non-emitters
	BRDF     *material.BRDF
}

// NewSphere creates a new sphere primitive
func NewSphere(center core.Vec3, radius float64, emission core.Vec3, brdf *material.BRDF) *Sphere {
	return &Sphere{Center: center, Radius: radius, Emission: emission, BRDF: brdf}
}

// Intersect tests the ray against the sphere's analytic equation, solving
// |o + t·d - center|² = r² for t. Returns the smallest root greater than
// Epsilon, or false on a miss.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Quadratic in t with a = d·d = 1 for unit directions:
	// t² - 2t·(c-o)·d + (c-o)·(c-o) - r² = 0
	oc := s.Center.Subtract(ray.Origin)
	b := oc.Dot(ray.Direction)
	discriminant := b*b - oc.Dot(oc) + s.Radius*s.Radius

	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	if t := b - sqrtD; t > Epsilon {
		return t, true
	}
	if t := b + sqrtD; t > Epsilon {
		return t, true
	}
	return 0, false
}

// NormalAt returns the outward surface normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
