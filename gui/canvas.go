package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/render"
)

// debugGlyphWidth is the advance of ebitenutil's debug font
const debugGlyphWidth = 6

var background = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// Canvas draws onto an ebiten image with the surface origin shifted down by top
type Canvas struct {
	dst           *ebiten.Image
	top           float64
	width, height float64
}

func (c *Canvas) bind(dst *ebiten.Image, top, width, height float64) {
	c.dst, c.top, c.width, c.height = dst, top, width, height
}

func (c *Canvas) Size() (float64, float64) { return c.width, c.height }

func (c *Canvas) Clear() {
	vector.DrawFilledRect(c.dst, 0, float32(c.top), float32(c.width), float32(c.height), background, false)
}

func (c *Canvas) Line(a, b curve.Point, s render.Style) {
	vector.StrokeLine(c.dst,
		float32(a.X), float32(a.Y+c.top), float32(b.X), float32(b.Y+c.top),
		strokeWidth(s), rgba(s.Color), true)
}

func (c *Canvas) Circle(center curve.Point, radius float64, s render.Style) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y+c.top), float32(radius), strokeWidth(s), rgba(s.Color), true)
}

func (c *Canvas) FillCircle(center curve.Point, radius float64, s render.Style) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y+c.top), float32(radius), rgba(s.Color), true)
}

func (c *Canvas) Rect(r curve.Rect, s render.Style) {
	vector.StrokeRect(c.dst,
		float32(r.MinX()), float32(r.MinY()+c.top), float32(r.Width()), float32(r.Height()),
		strokeWidth(s), rgba(s.Color), false)
}

// Text uses the debug font, which is white only
func (c *Canvas) Text(at curve.Point, text string, _ render.Style) {
	ebitenutil.DebugPrintAt(c.dst, text, int(at.X), int(at.Y+c.top))
}

func (c *Canvas) TextWidth(text string) float64 {
	return float64(len([]rune(text)) * debugGlyphWidth)
}

func strokeWidth(s render.Style) float32 {
	return float32(max(s.Width, 1))
}

func rgba(c render.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
