package render

import (
	"math"

	"github.com/lixenwraith/ascii-cube/constant"
	"github.com/lixenwraith/ascii-cube/vmath"
)

// Projection is a rotated point mapped to a cell
type Projection struct {
	X, Y     int
	InvDepth float64
	Valid    bool
}

// Projector maps camera-aligned points to grid cells for one camera distance
type Projector struct {
	grid     Grid
	distance float64
	halfW    float64
	halfH    float64
}

// NewProjector creates a projector for grid with the camera distance from the cube center
func NewProjector(grid Grid, distance float64) Projector {
	return Projector{
		grid:     grid,
		distance: distance,
		halfW:    float64(grid.Width) / 2,
		halfH:    float64(grid.Height) / 2,
	}
}

// Project applies the perspective divide and cell mapping
// Zero, negative and non-finite camera depth and off-grid cells yield an invalid projection
func (p Projector) Project(v vmath.Vec3F) Projection {
	zCam := v.Z + p.distance
	if zCam == 0 {
		return Projection{}
	}
	ooz := 1 / zCam
	if !(ooz > 0) || math.IsInf(ooz, 1) {
		return Projection{}
	}

	fx := math.Floor(p.halfW + p.grid.K1*ooz*v.X*constant.CellAspect)
	fy := math.Floor(p.halfH + p.grid.K1*ooz*v.Y)

	// Bounds in float space first: huge or NaN coordinates must not reach int conversion
	if !(fx >= 0 && fx < float64(p.grid.Width) && fy >= 0 && fy < float64(p.grid.Height)) {
		return Projection{}
	}

	return Projection{
		X:        int(fx),
		Y:        int(fy),
		InvDepth: ooz,
		Valid:    true,
	}
}
