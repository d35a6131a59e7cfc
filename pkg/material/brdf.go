package material

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// mirrorTolerance is the per-axis tolerance for matching a queried incoming
// direction against the ideal mirror direction
const mirrorTolerance = 1e-4

// Kind identifies a reflectance model
type Kind int

const (
	// Diffuse is an ideal Lambertian reflector
	Diffuse Kind = iota
	// Mirror is a perfect specular reflector
	Mirror
)

// BRDF is a surface reflectance model, a closed variant over the diffuse and
// perfect-mirror cases. Instances are immutable and shared by reference among
// all spheres that use them.
//
// Direction conventions: normal faces the outgoing (viewer) side, outgoing
// points away from the surface toward the viewer, incoming points away from
// the surface toward the light. All directions are unit-length.
type BRDF struct {
	Kind        Kind
	Reflectance core.Vec3
}

// NewDiffuse creates a Lambertian BRDF with the given reflectance
func NewDiffuse(reflectance core.Vec3) *BRDF {
	return &BRDF{Kind: Diffuse, Reflectance: reflectance}
}

// NewMirror creates a perfect-specular BRDF with the given reflectance
func NewMirror(reflectance core.Vec3) *BRDF {
	return &BRDF{Kind: Mirror, Reflectance: reflectance}
}

// IsSpecular reports whether this BRDF is a delta function. Specular surfaces
// get no next-event estimation; all of their light arrives via the mirror
// recursion.
func (b *BRDF) IsSpecular() bool {
	return b.Kind == Mirror
}

// Eval returns the reflectance weight for light arriving from incoming and
// leaving toward outgoing at a surface with the given normal.
func (b *BRDF) Eval(normal, outgoing, incoming core.Vec3) core.Vec3 {
	switch b.Kind {
	case Diffuse:
		// Lambertian BRDF is constant: reflectance / π
		return b.Reflectance.Multiply(1.0 / math.Pi)
	case Mirror:
		// Delta function: nonzero only for the exact mirror direction.
		// The 1/cos(θ) factor cancels the cosine applied by the estimator,
		// so a mirror bounce attenuates by reflectance alone.
		mirrored := MirrorDirection(normal, outgoing).Normalize()
		i := incoming.Normalize()
		if math.Abs(i.X-mirrored.X) <= mirrorTolerance &&
			math.Abs(i.Y-mirrored.Y) <= mirrorTolerance &&
			math.Abs(i.Z-mirrored.Z) <= mirrorTolerance {
			return b.Reflectance.Multiply(1.0 / normal.Dot(i))
		}
		return core.Vec3{}
	}
	return core.Vec3{}
}

// Sample draws an incoming direction for the given normal and outgoing
// direction, returning the direction and its probability density. Diffuse
// surfaces draw a cosine-weighted hemisphere direction with pdf cos(θ)/π;
// mirrors deterministically return the mirror direction with pdf 1.
func (b *BRDF) Sample(normal, outgoing core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	switch b.Kind {
	case Diffuse:
		incoming := core.SampleCosineHemisphere(normal, sampler.Get2D())
		pdf := normal.Dot(incoming) / math.Pi
		return incoming, pdf
	case Mirror:
		return MirrorDirection(normal, outgoing), 1.0
	}
	return core.Vec3{}, 0
}

// MirrorDirection returns the ideal mirror reflection of outgoing about normal
func MirrorDirection(normal, outgoing core.Vec3) core.Vec3 {
	// i = 2(n·o)n - o
	return normal.Multiply(2.0 * normal.Dot(outgoing)).Subtract(outgoing)
}
