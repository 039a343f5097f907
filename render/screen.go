package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-cube/constant"
)

// Face colors, one per surface character
var (
	RgbFaceZNeg  = tcell.NewRGBColor(255, 120, 120) // Soft red
	RgbFaceXPos  = tcell.NewRGBColor(255, 200, 90)  // Amber
	RgbFaceXNeg  = tcell.NewRGBColor(120, 220, 255) // Sky
	RgbFaceZPos  = tcell.NewRGBColor(140, 255, 140) // Mint
	RgbFaceYNeg  = tcell.NewRGBColor(190, 150, 255) // Lavender
	RgbFaceYPos  = tcell.NewRGBColor(255, 255, 255) // White
	RgbCorner    = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbHUD       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHUDAccent = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHUDError  = tcell.NewRGBColor(255, 80, 80)   // Normal red
)

var faceColors = map[byte]tcell.Color{
	constant.CharFaceZNeg: RgbFaceZNeg,
	constant.CharFaceXPos: RgbFaceXPos,
	constant.CharFaceXNeg: RgbFaceXNeg,
	constant.CharFaceZPos: RgbFaceZPos,
	constant.CharFaceYNeg: RgbFaceYNeg,
	constant.CharFaceYPos: RgbFaceYPos,
	constant.CharCorner:   RgbCorner,
}

// FaceColor returns the color of a surface character, white when unknown
func FaceColor(ch byte) tcell.Color {
	if c, ok := faceColors[ch]; ok {
		return c
	}
	return tcell.ColorWhite
}

// FaceStyle returns the display style for a surface character
func FaceStyle(ch byte) tcell.Style {
	c, ok := faceColors[ch]
	if !ok {
		return tcell.StyleDefault
	}
	style := tcell.StyleDefault.Foreground(c)
	if ch == constant.CharCorner {
		style = style.Bold(true)
	}
	return style
}

// Screen is the subset of tcell.Screen the frame drawer needs
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Draw copies the frame onto screen with its top-left at (x0, y0)
// Cells outside the screen are clipped; colored is false for plain monochrome output
func (b *FrameBuffer) Draw(screen Screen, x0, y0 int, colored bool) {
	sw, sh := screen.Size()
	for y := 0; y < b.grid.Height; y++ {
		sy := y0 + y
		if sy < 0 || sy >= sh {
			continue
		}
		for x, ch := range b.row(y) {
			sx := x0 + x
			if sx < 0 || sx >= sw {
				continue
			}
			style := tcell.StyleDefault
			if colored {
				style = FaceStyle(ch)
			}
			screen.SetContent(sx, sy, rune(ch), nil, style)
		}
	}
}

// DrawText writes s at (x, y) clipped to the screen width
func DrawText(screen Screen, x, y int, s string, style tcell.Style) {
	sw, sh := screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, r := range s {
		if x >= sw {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
