package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Total radiance estimates per pixel (split over the 2x2 subpixel grid)
	Workers         int   // Number of parallel workers, 0 = NumCPU
	Seed            int64 // Base RNG seed, 0 = time-based
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           480,
		Height:          360,
		SamplesPerPixel: 16,
	}
}

// Renderer runs the per-pixel sampling loop over a fixed pool of workers.
// Rows are the unit of work: no two workers ever write the same framebuffer
// element, so the row partition is the only synchronization discipline
// needed. Each worker owns a private sampler seeded from the base seed plus
// its worker index.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	tracer *integrator.PathTracer
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(s *scene.Scene, cameraConfig scene.CameraConfig, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Renderer{
		scene:  s,
		camera: NewCamera(cameraConfig, config.Width, config.Height),
		tracer: integrator.NewPathTracer(s),
		config: config,
		logger: logger,
	}
}

// Render traces the full image and returns the framebuffer with statistics.
// Results are invariant to worker scheduling order; per-seed reproducibility
// holds for a fixed worker-to-row assignment, not across worker counts.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := r.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// At least one estimate per subpixel cell
	subSamples := max(1, r.config.SamplesPerPixel/4)

	fb := NewFramebuffer(r.config.Width, r.config.Height)

	rows := make(chan int, r.config.Height)
	for y := 0; y < r.config.Height; y++ {
		rows <- y
	}
	close(rows)

	r.logger.Printf("rendering %dx%d at %d spp with %d workers",
		r.config.Width, r.config.Height, subSamples*4, workers)

	progressStep := max(1, r.config.Height/10)
	var rowsDone atomic.Int64

	start := time.Now()
	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(workerID))))
			for y := range rows {
				r.renderRow(fb, y, subSamples, sampler)
				if done := rowsDone.Add(1); done%int64(progressStep) == 0 {
					r.logger.Printf("rendered %d/%d rows", done, r.config.Height)
				}
			}
		}(id)
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  r.config.Width * r.config.Height,
		TotalSamples: r.config.Width * r.config.Height * subSamples * 4,
		Workers:      workers,
		Elapsed:      time.Since(start),
	}
	return fb, stats
}

// renderRow traces every pixel of one row: subSamples jittered estimates per
// subpixel cell, each cell average clamped to [0,1] before the 2x2 cells are
// averaged into the pixel. The estimator itself returns unclamped radiance;
// clamping here is the caller-side contract.
func (r *Renderer) renderRow(fb *Framebuffer, y, subSamples int, sampler core.Sampler) {
	invSamples := 1.0 / float64(subSamples)

	for x := 0; x < r.config.Width; x++ {
		var pixel core.Vec3
		for sy := 0; sy < 2; sy++ {
			for sx := 0; sx < 2; sx++ {
				var accum core.Vec3
				for s := 0; s < subSamples; s++ {
					ray := r.camera.Ray(x, y, sx, sy, sampler.Get2D())
					accum = accum.Add(r.tracer.EstimateRadiance(ray, sampler).Multiply(invSamples))
				}
				pixel = pixel.Add(accum.Clamp(0, 1).Multiply(0.25))
			}
		}
		fb.Pixels[y*fb.Width+x] = pixel
	}
}

type noopLogger struct{}

func (noopLogger) Printf(format string, args ...interface{}) {}
