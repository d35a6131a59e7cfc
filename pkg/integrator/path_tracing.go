package integrator

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// visibilityTolerance is the per-axis tolerance when matching a shadow-ray
// hit point against the sampled light point
const visibilityTolerance = 1e-4

// rouletteDepth is the bounce count after which russian roulette activates
const rouletteDepth = 5

// rouletteSurvival is the continuation probability once roulette is active
const rouletteSurvival = 0.9

// defaultMaxDepth is a hard recursion ceiling. Roulette terminates paths
// probabilistically but never bounds depth; the ceiling truncates the rare
// deep tail (probability ~0.9^(d-5)) with bias far below sampling noise.
const defaultMaxDepth = 64

// PathTracer estimates radiance arriving along camera rays by recursive
// Monte Carlo path tracing with single-sample next-event estimation.
// It holds no mutable state and is safe for concurrent use; all randomness
// comes from the per-worker sampler passed into each call.
type PathTracer struct {
	scene    *scene.Scene
	maxDepth int
}

// NewPathTracer creates a path tracer for the given scene
func NewPathTracer(s *scene.Scene) *PathTracer {
	return &PathTracer{scene: s, maxDepth: defaultMaxDepth}
}

// EstimateRadiance computes the radiance arriving along a camera ray.
// The result is unclamped and non-negative per channel; light sources may
// push channels above 1, clamping is the caller's contract.
func (pt *PathTracer) EstimateRadiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.radiance(ray, 1, true, sampler)
}

// radiance is the recursive estimator. includeEmission controls whether the
// hit primitive's emitted radiance is counted: true only for camera rays and
// bounces off specular surfaces. After a diffuse bounce the direct-lighting
// term has already accounted for the light, so emission is skipped to avoid
// double counting.
func (pt *PathTracer) radiance(ray core.Ray, depth int, includeEmission bool, sampler core.Sampler) core.Vec3 {
	if depth > pt.maxDepth {
		return core.Vec3{}
	}

	t, sphere, ok := pt.scene.Intersect(ray)
	if !ok {
		return core.Vec3{} // Miss is a valid terminal state, not an error
	}

	x := ray.At(t)
	outgoing := ray.Direction.Negate().Normalize()

	// Shading normal, flipped to face the outgoing direction
	normal := sphere.NormalAt(x)
	if normal.Dot(outgoing) < 0 {
		normal = normal.Negate()
	}

	var total core.Vec3
	if !sphere.BRDF.IsSpecular() {
		total = pt.directLighting(x, normal, outgoing, sphere.BRDF, sampler)
	}

	// Russian roulette: always continue for shallow paths, then keep 90%
	// of survivors and reweight by the survival probability
	survival := 1.0
	if depth >= rouletteDepth {
		survival = rouletteSurvival
	}
	if sampler.Get1D() < survival {
		total = total.Add(pt.indirectLighting(x, normal, outgoing, sphere.BRDF, depth, survival, sampler))
	}

	if includeEmission {
		total = total.Add(sphere.Emission)
	}
	return total
}

// directLighting computes the single-sample next-event estimate at a
// non-specular hit point: sample the light sphere, test visibility, and
// convert the area-measure pdf through the geometric term.
func (pt *PathTracer) directLighting(x, normal, outgoing core.Vec3, brdf *material.BRDF, sampler core.Sampler) core.Vec3 {
	lightPoint, lightNormal, pdf := pt.scene.SampleLight(sampler.Get2D())

	toLight := lightPoint.Subtract(x)
	distanceSquared := toLight.LengthSquared()
	omega := toLight.Normalize()

	// Clamp both cosines: back-facing geometry contributes nothing, never
	// negative radiance
	cosSurface := math.Max(0, normal.Dot(omega))
	cosLight := math.Max(0, lightNormal.Dot(omega.Negate()))
	if cosSurface == 0 || cosLight == 0 {
		return core.Vec3{}
	}

	if !pt.Visible(x, lightPoint) {
		return core.Vec3{}
	}

	emission := pt.scene.Light().Emission
	weight := brdf.Eval(normal, outgoing, omega)
	return emission.MultiplyVec(weight).Multiply(cosSurface * cosLight / (distanceSquared * pdf))
}

// indirectLighting samples a continuation direction from the BRDF, recurses,
// and folds the result through the reflectance weight, cosine, sampling pdf
// and roulette survival probability.
func (pt *PathTracer) indirectLighting(x, normal, outgoing core.Vec3, brdf *material.BRDF, depth int, survival float64, sampler core.Sampler) core.Vec3 {
	incoming, pdf := brdf.Sample(normal, outgoing, sampler)

	// Diffuse sampling yields pdf = 0 only when the cosine is also 0; treat
	// the 0/0 case as zero contribution rather than NaN
	cosine := math.Max(0, normal.Dot(incoming))
	if pdf <= 0 || cosine == 0 {
		return core.Vec3{}
	}

	// Emission on the next hit counts only when this surface is specular:
	// no next-event estimation happened here to capture it already
	next := core.NewRay(x, incoming.Normalize())
	li := pt.radiance(next, depth+1, brdf.IsSpecular(), sampler)

	return li.MultiplyVec(brdf.Eval(normal, outgoing, incoming)).Multiply(cosine / (pdf * survival))
}

// Visible reports whether x has an unobstructed line of sight to y. It casts
// a ray from x toward y and compares the nearest hit point against y within
// an absolute per-axis tolerance. Known approximation, preserved for output
// parity: the comparison is by position, not by distance bound, so it cannot
// mistake a surface beyond y for an occluder, but it can misjudge
// near-tangent geometry inside the tolerance.
func (pt *PathTracer) Visible(x, y core.Vec3) bool {
	ray := core.NewRay(x, y.Subtract(x).Normalize())

	t, _, ok := pt.scene.Intersect(ray)
	if !ok {
		return false
	}

	hit := ray.At(t)
	return math.Abs(hit.X-y.X) <= visibilityTolerance &&
		math.Abs(hit.Y-y.Y) <= visibilityTolerance &&
		math.Abs(hit.Z-y.Z) <= visibilityTolerance
}
