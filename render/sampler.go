package render

import (
	"math"

	"github.com/lixenwraith/ascii-cube/constant"
	"github.com/lixenwraith/ascii-cube/scene"
	"github.com/lixenwraith/ascii-cube/vmath"
)

// SurfacePoint is one cube-space sample and the character it draws
type SurfacePoint struct {
	Pos  vmath.Vec3F
	Char byte
}

// Sampler enumerates surface points for a cube of half-extent size
// Points are appended to dst in a fixed order; depth-test tie-breaking depends on it
type Sampler interface {
	Sample(dst []SurfacePoint, size, density float64) []SurfacePoint
	// Estimate returns how many points Sample will append, saturating at math.MaxInt
	// Callers check it before Sample; the count grows quadratically
	Estimate(size, density float64) int
}

// SamplerFor returns the enumeration strategy for s
func SamplerFor(s scene.Sampler) Sampler {
	if s == scene.SamplerSweep {
		return SweepSampler{Increment: constant.SweepIncrement}
	}
	return DensitySampler{}
}

// stepSlack absorbs float error so a step dividing 2 exactly still reaches +1
const stepSlack = 1e-9

// DensitySampler draws the 8 corners, then a grid per face stepped by density
// Sampling happens in normalized [-1, 1] space and is scaled by size on emit
type DensitySampler struct{}

func (DensitySampler) steps(density float64) int {
	return int(math.Floor(2/density + stepSlack))
}

func (d DensitySampler) Sample(dst []SurfacePoint, size, density float64) []SurfacePoint {
	if !(density > 0) || !(size > 0) {
		return dst
	}

	// Corners, stepped by exactly 2 along each axis
	for x := -1.0; x <= 1; x += 2 {
		for y := -1.0; y <= 1; y += 2 {
			for z := -1.0; z <= 1; z += 2 {
				dst = append(dst, SurfacePoint{
					Pos:  vmath.V3FScale(vmath.Vec3F{X: x, Y: y, Z: z}, size),
					Char: constant.CharCorner,
				})
			}
		}
	}

	// Index-based: u = -1 + i*density never drifts past +1
	steps := d.steps(density)
	for a := 0; a <= steps; a++ {
		u := -1 + float64(a)*density
		for b := 0; b <= steps; b++ {
			v := -1 + float64(b)*density
			dst = appendFaces(dst, u, v, 1, size)
		}
	}
	return dst
}

func (d DensitySampler) Estimate(size, density float64) int {
	if !(density > 0) || !(size > 0) {
		return 0
	}
	n := math.Floor(2/density+stepSlack) + 1
	return saturate(8 + 6*n*n)
}

// SweepSampler is the legacy enumeration: both free axes sweep [-size, size) in fixed increments
// Cost grows with size and ignores density
type SweepSampler struct {
	Increment float64
}

func (s SweepSampler) Sample(dst []SurfacePoint, size, _ float64) []SurfacePoint {
	if !(s.Increment > 0) || !(size > 0) {
		return dst
	}
	for u := -size; u < size; u += s.Increment {
		for v := -size; v < size; v += s.Increment {
			dst = appendFaces(dst, u, v, size, 1)
		}
	}
	return dst
}

func (s SweepSampler) Estimate(size, _ float64) int {
	if !(s.Increment > 0) || !(size > 0) {
		return 0
	}
	// Upper bound; accumulated float steps may stop one short
	n := math.Ceil(2*size/s.Increment) + 1
	return saturate(6 * n * n)
}

// saturate converts a non-negative count to int without overflow
func saturate(f float64) int {
	if !(f < math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

// appendFaces emits one point on each of the six faces for free coordinates (u, v)
// pin is the pinned-axis magnitude, scale multiplies every coordinate
func appendFaces(dst []SurfacePoint, u, v, pin, scale float64) []SurfacePoint {
	face := func(x, y, z float64, ch byte) SurfacePoint {
		return SurfacePoint{Pos: vmath.V3FScale(vmath.Vec3F{X: x, Y: y, Z: z}, scale), Char: ch}
	}
	return append(dst,
		face(u, v, -pin, constant.CharFaceZNeg),
		face(pin, v, u, constant.CharFaceXPos),
		face(-pin, v, -u, constant.CharFaceXNeg),
		face(-u, v, pin, constant.CharFaceZPos),
		face(u, -pin, -v, constant.CharFaceYNeg),
		face(u, pin, v, constant.CharFaceYPos),
	)
}
