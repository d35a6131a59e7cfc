package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// CameraConfig describes the camera ray for a scene
type CameraConfig struct {
	Origin    core.Vec3
	Direction core.Vec3 // Unit-length viewing direction
}

// NewCornellScene creates the classic Cornell box built entirely from
// spheres: five huge spheres approximate the walls, two balls sit inside,
// and a small emissive sphere under the ceiling is the light.
func NewCornellScene() (*Scene, CameraConfig) {
	// Shared wall and ball materials
	leftWall := material.NewDiffuse(core.NewVec3(0.75, 0.25, 0.25))
	rightWall := material.NewDiffuse(core.NewVec3(0.25, 0.25, 0.75))
	otherWall := material.NewDiffuse(core.NewVec3(0.75, 0.75, 0.75))
	blackSurf := material.NewDiffuse(core.NewVec3(0, 0, 0))
	brightSurf := material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9))
	shinySurf := material.NewMirror(core.NewVec3(0.999, 0.999, 0.999))

	noEmission := core.NewVec3(0, 0, 0)

	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(1e5+1, 40.8, 81.6), 1e5, noEmission, leftWall),    // Left
		geometry.NewSphere(core.NewVec3(-1e5+99, 40.8, 81.6), 1e5, noEmission, rightWall), // Right
		geometry.NewSphere(core.NewVec3(50, 40.8, 1e5), 1e5, noEmission, otherWall),       // Back
		geometry.NewSphere(core.NewVec3(50, 1e5, 81.6), 1e5, noEmission, otherWall),       // Bottom
		geometry.NewSphere(core.NewVec3(50, -1e5+81.6, 81.6), 1e5, noEmission, otherWall), // Top
		geometry.NewSphere(core.NewVec3(27, 16.5, 47), 16.5, noEmission, brightSurf),      // Ball 1
		geometry.NewSphere(core.NewVec3(73, 16.5, 78), 16.5, noEmission, shinySurf),       // Ball 2
		geometry.NewSphere(core.NewVec3(50, 70.0, 81.6), 5.0,
			core.NewVec3(50, 50, 50), blackSurf), // Light
	}

	camera := CameraConfig{
		Origin:    core.NewVec3(50, 52, 295.6),
		Direction: core.NewVec3(0, -0.042612, -1).Normalize(),
	}

	return NewScene(spheres, 7), camera
}
