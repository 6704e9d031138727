package meter

import "image/color"

// DrawContext is the rendering surface the meter paints into. Coordinates are
// in pixels with the origin at the widget's top-left corner; angles are in
// radians, 0 at 3 o'clock, increasing clockwise in screen coordinates.
// DrawText places the top-left corner of the text box at (x, y).
type DrawContext interface {
	SetFillColor(c color.Color)
	FillRoundedRect(x, y, w, h, radius float64)

	SetStrokeColor(c color.Color)
	SetStrokeWidth(w float64)
	StrokeCircle(cx, cy, r float64)
	StrokeArc(cx, cy, r, startRad, endRad float64)

	SetTextColor(c color.Color)
	SetFontSize(size float64)
	SetFontWeight(bold bool)
	DrawText(s string, x, y float64)
	MeasureText(s string) (w, h float64)
}

// TextSource is the read-only contract the meter needs from a linked
// text-input widget. The meter never mutates the input.
type TextSource interface {
	CurrentText() string
}
