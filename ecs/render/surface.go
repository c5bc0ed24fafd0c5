package render

import "image/color"

// Surface is a fixed-size drawing target. Coordinates are in surface pixels
// with the origin at the top-left.
type Surface interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	DrawString(x, y float64, text string, fg, bg color.Color)
}

// Text metrics of the 7x13 HUD font used by on-screen surfaces.
const (
	GlyphWidth = 7
	LineHeight = 13
)

// TextWidth returns the width of a single line of HUD text.
func TextWidth(text string) float64 {
	return float64(len(text) * GlyphWidth)
}
