// internal/ui/button.go
package ui

import (
	"image"

	"grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button — кликабельная кнопка панели.
type Button struct {
	Rect     image.Rectangle
	Text     string
	fontFace font.Face
	Disabled bool
}

func NewButton(rect image.Rectangle, label string, fontFace font.Face) *Button {
	return &Button{Rect: rect, Text: label, fontFace: fontFace}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	mx, my := ebiten.CursorPosition()
	if !b.Disabled && b.Contains(mx, my) {
		bg = config.ButtonHoverColor
	}

	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.GridLineColor, false)

	textColor := config.TextLightColor
	if b.Disabled {
		textColor = config.GridLineColor
	}
	bounds := text.BoundString(b.fontFace, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.fontFace, tx, ty, textColor)
}
