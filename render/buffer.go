package render

import (
	"io"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/lixenwraith/ascii-cube/constant"
)

// PlotResult reports what a depth test did with one sample
type PlotResult uint8

const (
	Plotted   PlotResult = iota // wrote the cell
	Occluded                    // in bounds but not strictly nearer than the current cell
	Discarded                   // invalid depth or off-grid
)

// FrameBuffer is one rasterization pass: a character and an inverse depth per cell
// Invariant: Depth[i] is the greatest inverse depth written to cell i this pass
// and Cells[i] is the character of the sample that wrote it
type FrameBuffer struct {
	Cells []byte
	Depth []float64
	grid  Grid
}

// NewFrameBuffer creates a cleared buffer for grid
func NewFrameBuffer(grid Grid) *FrameBuffer {
	size := grid.Size()
	b := &FrameBuffer{
		Cells: make([]byte, size),
		Depth: make([]float64, size),
		grid:  grid,
	}
	b.Clear()
	return b
}

// Grid returns the buffer geometry
func (b *FrameBuffer) Grid() Grid {
	return b.grid
}

// Clear resets cells to blank and depth to zero (nothing drawn) using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.Cells) == 0 {
		return
	}
	b.Cells[0] = constant.CharEmpty
	for filled := 1; filled < len(b.Cells); filled *= 2 {
		copy(b.Cells[filled:], b.Cells[:filled])
	}
	clear(b.Depth)
}

// Plot applies the depth test for one sample
// Only strictly greater inverse depth overwrites, so among equal depths the earlier writer stays
func (b *FrameBuffer) Plot(x, y int, invDepth float64, ch byte) PlotResult {
	// NaN fails the comparison and lands here too
	if !(invDepth > 0) || math.IsInf(invDepth, 1) {
		return Discarded
	}
	if !b.grid.InBounds(x, y) {
		return Discarded
	}
	idx := b.grid.Index(x, y)
	if invDepth > b.Depth[idx] {
		b.Depth[idx] = invDepth
		b.Cells[idx] = ch
		return Plotted
	}
	return Occluded
}

// At returns the character at (x, y), blank when out of bounds
func (b *FrameBuffer) At(x, y int) byte {
	if !b.grid.InBounds(x, y) {
		return constant.CharEmpty
	}
	return b.Cells[b.grid.Index(x, y)]
}

// DepthAt returns the inverse depth at (x, y), zero when out of bounds
func (b *FrameBuffer) DepthAt(x, y int) float64 {
	if !b.grid.InBounds(x, y) {
		return 0
	}
	return b.Depth[b.grid.Index(x, y)]
}

// row aliases the cells of row y
func (b *FrameBuffer) row(y int) []byte {
	start := y * b.grid.Width
	return b.Cells[start : start+b.grid.Width]
}

// String joins the rows with a newline after every row except the last
func (b *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.grid.Size() + b.grid.Height)
	_, _ = b.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the same text as String to w
func (b *FrameBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for y := 0; y < b.grid.Height; y++ {
		if y > 0 {
			n, err := w.Write([]byte{'\n'})
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := w.Write(b.row(y))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Digest returns the xxhash64 of the cells; identical frames share a digest
func (b *FrameBuffer) Digest() uint64 {
	return xxhash.Sum64(b.Cells)
}
