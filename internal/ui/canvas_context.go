package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// canvasContext implements meter.DrawContext by accumulating Fyne canvas
// objects. A fresh context is built on every frame; the resulting object list
// replaces the widget renderer's previous one.
type canvasContext struct {
	objects []fyne.CanvasObject

	fillColor   color.Color
	strokeColor color.Color
	strokeWidth float64
	textColor   color.Color
	fontSize    float64
	fontBold    bool
}

func newCanvasContext() *canvasContext {
	return &canvasContext{
		fillColor:   color.Black,
		strokeColor: color.Black,
		strokeWidth: 1,
		textColor:   color.Black,
		fontSize:    float64(theme.TextSize()),
	}
}

// Objects returns the accumulated canvas objects in paint order
func (c *canvasContext) Objects() []fyne.CanvasObject {
	return c.objects
}

func (c *canvasContext) SetFillColor(col color.Color) {
	c.fillColor = col
}

func (c *canvasContext) FillRoundedRect(x, y, w, h, radius float64) {
	rect := canvas.NewRectangle(c.fillColor)
	rect.CornerRadius = float32(radius)
	rect.Move(fyne.NewPos(float32(x), float32(y)))
	rect.Resize(fyne.NewSize(float32(w), float32(h)))
	c.objects = append(c.objects, rect)
}

func (c *canvasContext) SetStrokeColor(col color.Color) {
	c.strokeColor = col
}

func (c *canvasContext) SetStrokeWidth(w float64) {
	c.strokeWidth = w
}

func (c *canvasContext) StrokeCircle(cx, cy, r float64) {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = c.strokeColor
	circle.StrokeWidth = float32(c.strokeWidth)
	circle.Move(fyne.NewPos(float32(cx-r), float32(cy-r)))
	circle.Resize(fyne.NewSize(float32(2*r), float32(2*r)))
	c.objects = append(c.objects, circle)
}

// StrokeArc approximates the arc with a polyline. Angles are in radians, 0 at
// 3 o'clock, increasing clockwise in screen coordinates, which matches the
// screen's downward y axis directly.
func (c *canvasContext) StrokeArc(cx, cy, r, startRad, endRad float64) {
	sweep := endRad - startRad
	if sweep == 0 {
		return
	}

	segments := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * ArcSegmentsFull))
	if segments < ArcSegmentsMin {
		segments = ArcSegmentsMin
	}

	step := sweep / float64(segments)
	prevX := cx + r*math.Cos(startRad)
	prevY := cy + r*math.Sin(startRad)
	for i := 1; i <= segments; i++ {
		angle := startRad + step*float64(i)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)

		line := canvas.NewLine(c.strokeColor)
		line.StrokeWidth = float32(c.strokeWidth)
		line.Position1 = fyne.NewPos(float32(prevX), float32(prevY))
		line.Position2 = fyne.NewPos(float32(x), float32(y))
		c.objects = append(c.objects, line)

		prevX, prevY = x, y
	}
}

func (c *canvasContext) SetTextColor(col color.Color) {
	c.textColor = col
}

func (c *canvasContext) SetFontSize(size float64) {
	c.fontSize = size
}

func (c *canvasContext) SetFontWeight(bold bool) {
	c.fontBold = bold
}

func (c *canvasContext) DrawText(s string, x, y float64) {
	text := canvas.NewText(s, c.textColor)
	text.TextSize = float32(c.fontSize)
	text.TextStyle = fyne.TextStyle{Bold: c.fontBold}
	text.Move(fyne.NewPos(float32(x), float32(y)))
	c.objects = append(c.objects, text)
}

func (c *canvasContext) MeasureText(s string) (float64, float64) {
	size := fyne.MeasureText(s, float32(c.fontSize), fyne.TextStyle{Bold: c.fontBold})
	return float64(size.Width), float64(size.Height)
}
