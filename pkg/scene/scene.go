package scene

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

// Scene holds the fixed ordered set of sphere primitives plus the index of
// the single light-emitting sphere used for direct-lighting sampling.
// Scenes are read-only during rendering and freely shared between workers.
type Scene struct {
	Spheres    []*geometry.Sphere
	LightIndex int
}

// NewScene creates a scene from an ordered sphere list and the index of the
// light source. Geometry is not validated; degenerate spheres are the
// constructor caller's responsibility.
func NewScene(spheres []*geometry.Sphere, lightIndex int) *Scene {
	return &Scene{Spheres: spheres, LightIndex: lightIndex}
}

// Light returns the designated light-source sphere
func (s *Scene) Light() *geometry.Sphere {
	return s.Spheres[s.LightIndex]
}

// Intersect finds the nearest sphere hit by the ray, scanning every
// primitive and keeping the smallest valid distance. Returns false on a
// miss. A linear scan is adequate at this primitive count; larger scenes
// would need an acceleration structure.
func (s *Scene) Intersect(ray core.Ray) (float64, *geometry.Sphere, bool) {
	closest := math.Inf(1)
	var hit *geometry.Sphere

	for _, sphere := range s.Spheres {
		if t, ok := sphere.Intersect(ray); ok && t < closest {
			closest = t
			hit = sphere
		}
	}

	if hit == nil {
		return 0, nil, false
	}
	return closest, hit, true
}

// SampleLight draws a point uniformly over the surface of the light sphere.
// Returns the point, its outward normal and the surface-area sampling
// density 1/(4πr²). Conversion to a solid-angle measure is the caller's job.
func (s *Scene) SampleLight(sample core.Vec2) (point, normal core.Vec3, pdf float64) {
	light := s.Light()

	normal = core.SampleUniformSphere(sample)
	point = light.Center.Add(normal.Multiply(light.Radius))
	pdf = 1.0 / (4.0 * math.Pi * light.Radius * light.Radius)
	return point, normal, pdf
}
