// Package screen draws render calls onto ebiten images.
package screen

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/ecs/render"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var _ render.Surface = (*Surface)(nil)

// Surface draws onto an offscreen ebiten image of a fixed logical size.
type Surface struct {
	img *ebiten.Image
}

func New(width, height int) *Surface {
	return &Surface{img: ebiten.NewImage(width, height)}
}

// Image returns the backing image so the game can present it.
func (s *Surface) Image() *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.img
}

func (s *Surface) Size() (int, int) {
	if s == nil || s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear(c color.Color) {
	if s == nil || s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if s == nil || s.img == nil || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	sub, ok := s.img.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}
	sub.Fill(c)
}

// DrawString draws one line of text. A nil bg leaves the background as is.
func (s *Surface) DrawString(x, y float64, str string, fg, bg color.Color) {
	if s == nil || s.img == nil || str == "" {
		return
	}
	if bg != nil {
		s.FillRect(x, y, text.Advance(str, hudFace), render.LineHeight, bg)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if fg != nil {
		op.ColorScale.ScaleWithColor(fg)
	}
	text.Draw(s.img, str, hudFace, op)
}
