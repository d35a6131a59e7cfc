package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func testCameraConfig() scene.CameraConfig {
	return scene.CameraConfig{
		Origin:    core.NewVec3(50, 52, 295.6),
		Direction: core.NewVec3(0, -0.042612, -1).Normalize(),
	}
}

func TestCamera_Ray_UnitDirection(t *testing.T) {
	camera := NewCamera(testCameraConfig(), 480, 360)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		x := random.Intn(480)
		y := random.Intn(360)
		sample := core.NewVec2(random.Float64(), random.Float64())

		ray := camera.Ray(x, y, random.Intn(2), random.Intn(2), sample)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
			t.Fatalf("ray direction not unit length: %v", ray.Direction)
		}
		if ray.Origin != testCameraConfig().Origin {
			t.Fatalf("ray origin moved: %v", ray.Origin)
		}
	}
}

func TestCamera_Ray_CenterPixel(t *testing.T) {
	config := testCameraConfig()
	camera := NewCamera(config, 480, 360)

	// Sample 0.5 maps to zero tent-filter offset; the center pixel's ray is
	// nearly parallel to the viewing direction
	ray := camera.Ray(240, 180, 0, 0, core.NewVec2(0.5, 0.5))
	cosAngle := ray.Direction.Dot(config.Direction)
	if cosAngle < math.Cos(2*math.Pi/180) {
		t.Errorf("center ray deviates from view direction: cos %v", cosAngle)
	}
}

func TestCamera_Ray_CornersDiverge(t *testing.T) {
	camera := NewCamera(testCameraConfig(), 480, 360)
	sample := core.NewVec2(0.5, 0.5)

	left := camera.Ray(0, 180, 0, 0, sample)
	right := camera.Ray(479, 180, 1, 0, sample)

	if left.Direction.Subtract(right.Direction).Length() < 0.1 {
		t.Error("opposite image edges produced nearly identical rays")
	}
	// Horizontal extent follows the image-plane x basis
	if left.Direction.X >= right.Direction.X {
		t.Errorf("left edge x %v not less than right edge x %v",
			left.Direction.X, right.Direction.X)
	}
}

func TestTentFilter(t *testing.T) {
	if got := tentFilter(0.5); math.Abs(got) > 1e-12 {
		t.Errorf("tentFilter(0.5): got %v, expected 0", got)
	}
	if got := tentFilter(0); got != -1 {
		t.Errorf("tentFilter(0): got %v, expected -1", got)
	}

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		got := tentFilter(random.Float64())
		if got < -1 || got >= 1 {
			t.Fatalf("tentFilter out of [-1,1): %v", got)
		}
	}
}
