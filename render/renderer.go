package render

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ascii-cube/constant"
	"github.com/lixenwraith/ascii-cube/orient"
	"github.com/lixenwraith/ascii-cube/scene"
	"github.com/lixenwraith/ascii-cube/vmath"
)

const (
	// minChunk keeps tiny frames on the serial path
	minChunk = 512

	// cancelStride is how many points a worker projects between cancellation checks
	cancelStride = 256
)

var (
	// ErrSampleLimit rejects a pass that would enumerate more than constant.MaxSamples points
	ErrSampleLimit = errors.New("sample count exceeds limit")

	// ErrProjection wraps a panic raised while a worker rotated or projected its chunk
	ErrProjection = errors.New("projection worker failed")
)

// Stats counts what one pass did with its samples
type Stats struct {
	Samples   int
	Plotted   int
	Occluded  int
	Discarded int
}

// Renderer runs rasterization passes on a fixed grid
// Render has no hidden state: output depends only on its arguments
type Renderer struct {
	grid Grid

	// Workers > 1 projects samples concurrently; depth tests stay serial in enumeration order
	Workers int
}

// NewRenderer creates a serial renderer for grid
func NewRenderer(grid Grid) *Renderer {
	return &Renderer{grid: grid}
}

// Grid returns the renderer's output geometry
func (r *Renderer) Grid() Grid {
	return r.grid
}

// RotationFor selects the frame's rotation: diagonal-axis for ModeDiagonal, Euler otherwise
func RotationFor(state orient.State, p scene.Params) vmath.Rotation {
	if p.Mode == scene.ModeDiagonal {
		return vmath.NewDiagonalRotation(state.A, p.Size)
	}
	return vmath.NewEulerRotation(state.A, state.B, state.C)
}

// SamplePoints enumerates the surface points a pass with p would rasterize
// Nothing is allocated when the estimate exceeds constant.MaxSamples
func SamplePoints(p scene.Params) ([]SurfacePoint, error) {
	sampler := SamplerFor(p.Sampler)
	n := sampler.Estimate(p.Size, p.Density)
	if n > constant.MaxSamples {
		return nil, fmt.Errorf("%w: %d > %d", ErrSampleLimit, n, constant.MaxSamples)
	}
	return sampler.Sample(make([]SurfacePoint, 0, n), p.Size, p.Density), nil
}

// Render runs one pass and returns a fresh FrameBuffer
// Invalid samples are discarded and counted, never reported as errors
// Errors come only from the sample limit or a failed projection worker
func (r *Renderer) Render(state orient.State, p scene.Params) (*FrameBuffer, Stats, error) {
	points, err := SamplePoints(p)
	if err != nil {
		return nil, Stats{}, err
	}
	rot := RotationFor(state, p)
	proj := NewProjector(r.grid, p.Distance)
	buf := NewFrameBuffer(r.grid)

	stats := Stats{Samples: len(points)}
	plot := func(pr Projection, ch byte) {
		if !pr.Valid {
			stats.Discarded++
			return
		}
		switch buf.Plot(pr.X, pr.Y, pr.InvDepth, ch) {
		case Plotted:
			stats.Plotted++
		case Occluded:
			stats.Occluded++
		default:
			stats.Discarded++
		}
	}

	workers := r.Workers
	if workers <= 1 || len(points) < workers*minChunk {
		for _, pt := range points {
			plot(proj.Project(rot.Apply(pt.Pos)), pt.Char)
		}
		return buf, stats, nil
	}

	projections, err := projectParallel(points, rot, proj, workers)
	if err != nil {
		return nil, Stats{}, err
	}
	for i, pt := range points {
		plot(projections[i], pt.Char)
	}
	return buf, stats, nil
}

// projectParallel rotates and projects disjoint chunks concurrently
// Each worker writes only its own slice range, so no locking is needed
// The first failing worker cancels the rest; its error is returned
func projectParallel(points []SurfacePoint, rot vmath.Rotation, proj Projector, workers int) ([]Projection, error) {
	out := make([]Projection, len(points))
	chunk := (len(points) + workers - 1) / workers

	g, ctx := errgroup.WithContext(context.Background())
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))
		g.Go(func() (err error) {
			// The host's recover only covers its own goroutine
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("%w: points [%d, %d): %v", ErrProjection, start, end, rec)
				}
			}()
			for i := start; i < end; i++ {
				if (i-start)%cancelStride == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				out[i] = proj.Project(rot.Apply(points[i].Pos))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
