package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Framebuffer holds the rendered image as a linear row-major sequence of
// color triples in [0,1] per channel, row 0 at the bottom
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// quantize converts a [0,1] channel value to 8 bits after gamma correction
func quantize(v core.Vec3, gamma float64) (r, g, b uint8) {
	c := v.Clamp(0, 1).GammaCorrect(gamma)
	r = uint8(c.X*255 + 0.5)
	g = uint8(c.Y*255 + 0.5)
	b = uint8(c.Z*255 + 0.5)
	return r, g, b
}

// ToRGBA converts the framebuffer to an 8-bit image with the given gamma,
// flipping rows so image row 0 is the top
func (fb *Framebuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := quantize(fb.At(x, fb.Height-1-y), gamma)
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePPM encodes the framebuffer as a plain PPM (P3) image
func (fb *Framebuffer) WritePPM(w io.Writer, gamma float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", fb.Width, fb.Height, 255); err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := quantize(fb.At(x, fb.Height-1-y), gamma)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r, g, b); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Gamma22 is the display gamma used by the output encoders
const Gamma22 = 2.2
