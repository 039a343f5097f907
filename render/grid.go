// Package render rasterizes the sampled cube surface into a fixed character grid.
//
// A pass enumerates surface points, rotates each with the frame's orientation,
// perspective-projects it and keeps, per cell, the point with the greatest
// inverse depth. The result is a FrameBuffer that serializes to ASCII art.
package render

import "github.com/lixenwraith/ascii-cube/constant"

// Grid is the immutable output geometry and focal constant of a renderer
type Grid struct {
	Width  int
	Height int
	K1     float64
}

// DefaultGrid returns the 80x44 grid with K1 = 40
func DefaultGrid() Grid {
	return Grid{
		Width:  constant.GridWidth,
		Height: constant.GridHeight,
		K1:     constant.FocalLength,
	}
}

// Size returns the number of cells
func (g Grid) Size() int {
	return g.Width * g.Height
}

// InBounds returns true if (x, y) addresses a cell
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the row-major linear index of (x, y); caller checks bounds
func (g Grid) Index(x, y int) int {
	return x + y*g.Width
}
