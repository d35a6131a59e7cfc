package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphere_InHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(-0.3, 0.5, -0.8).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 1000; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())

			if math.Abs(dir.Length()-1.0) > 1e-9 {
				t.Fatalf("direction not unit length: %v (len %v)", dir, dir.Length())
			}
			if dir.Dot(normal) < 0 {
				t.Fatalf("direction %v below hemisphere of normal %v", dir, normal)
			}
		}
	}
}

func TestSampleCosineHemisphere_CosineDistribution(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := NewVec3(0, 0, 1)

	// Under pdf = cos(θ)/π the expected value of cos(θ) is 2/3
	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		sum += dir.Dot(normal)
	}
	mean := sum / n

	if math.Abs(mean-2.0/3.0) > 0.005 {
		t.Errorf("mean cosine: got %v, expected 2/3", mean)
	}
}

func TestSampleUniformSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	const n = 100000
	sumZ := 0.0
	upper := 0
	for i := 0; i < n; i++ {
		dir := SampleUniformSphere(sampler.Get2D())

		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("direction not on unit sphere: %v", dir)
		}
		sumZ += dir.Z
		if dir.Z > 0 {
			upper++
		}
	}

	// Uniform sphere sampling is symmetric in z
	if math.Abs(sumZ/n) > 0.01 {
		t.Errorf("mean z: got %v, expected ~0", sumZ/n)
	}
	if frac := float64(upper) / n; math.Abs(frac-0.5) > 0.01 {
		t.Errorf("upper hemisphere fraction: got %v, expected ~0.5", frac)
	}
}

func TestOrthonormalBasis(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0.05, 0.99, 0.1).Normalize(),
	}

	for _, w := range normals {
		u, v := OrthonormalBasis(w)

		if math.Abs(u.Length()-1) > 1e-9 || math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("basis vectors not unit length for %v", w)
		}
		if math.Abs(u.Dot(w)) > 1e-9 || math.Abs(v.Dot(w)) > 1e-9 || math.Abs(u.Dot(v)) > 1e-9 {
			t.Errorf("basis not orthogonal for %v", w)
		}
	}
}
