package renderer

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// viewScale sets the field of view: the image plane spans 0.5135 units per
// half-height at unit focal distance
const viewScale = 0.5135

// Camera generates primary rays for pixel samples. Pixel row 0 is the bottom
// of the image.
type Camera struct {
	origin    core.Vec3
	direction core.Vec3
	cx        core.Vec3 // Image-plane basis along x
	cy        core.Vec3 // Image-plane basis along y
	width     int
	height    int
}

// NewCamera creates a camera for the given configuration and image size
func NewCamera(config scene.CameraConfig, width, height int) *Camera {
	cx := core.NewVec3(float64(width)*viewScale/float64(height), 0, 0)
	cy := cx.Cross(config.Direction).Normalize().Multiply(viewScale)

	return &Camera{
		origin:    config.Origin,
		direction: config.Direction,
		cx:        cx,
		cy:        cy,
		width:     width,
		height:    height,
	}
}

// Ray generates a jittered primary ray through pixel (x, y), subpixel
// (sx, sy) of the 2x2 grid, using a tent filter around the subpixel center
func (c *Camera) Ray(x, y, sx, sy int, sample core.Vec2) core.Ray {
	dx := tentFilter(sample.X)
	dy := tentFilter(sample.Y)

	u := ((float64(sx)+0.5+dx)/2+float64(x))/float64(c.width) - 0.5
	v := ((float64(sy)+0.5+dy)/2+float64(y))/float64(c.height) - 0.5

	direction := c.cx.Multiply(u).Add(c.cy.Multiply(v)).Add(c.direction)
	return core.NewRay(c.origin, direction.Normalize())
}

// tentFilter maps a uniform sample in [0,1) to [-1,1) with a tent-shaped
// density peaking at 0
func tentFilter(u float64) float64 {
	r := 2.0 * u
	if r < 1 {
		return math.Sqrt(r) - 1
	}
	return 1 - math.Sqrt(2-r)
}
