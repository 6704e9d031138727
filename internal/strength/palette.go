package strength

import "image/color"

// Default level colors, red through green
var (
	ColorVeryWeak   = color.RGBA{R: 183, G: 28, B: 28, A: 255}  // Deep red
	ColorWeak       = color.RGBA{R: 230, G: 81, B: 0, A: 255}   // Orange
	ColorFair       = color.RGBA{R: 255, G: 193, B: 7, A: 255}  // Amber
	ColorGood       = color.RGBA{R: 124, G: 179, B: 66, A: 255} // Light green
	ColorStrong     = color.RGBA{R: 46, G: 160, B: 67, A: 255}  // Green
	ColorVeryStrong = color.RGBA{R: 27, G: 94, B: 32, A: 255}   // Deep green
	ColorNoPassword = color.RGBA{R: 158, G: 158, B: 158, A: 255}
	ColorBackground = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	ColorText       = color.RGBA{R: 33, G: 33, B: 33, A: 255}
)

// Palette holds the meter colors: one per level plus background and text
type Palette struct {
	VeryWeak   color.RGBA
	Weak       color.RGBA
	Fair       color.RGBA
	Good       color.RGBA
	Strong     color.RGBA
	VeryStrong color.RGBA
	Background color.RGBA
	Text       color.RGBA
}

// DefaultPalette returns the standard red-to-green palette
func DefaultPalette() Palette {
	return Palette{
		VeryWeak:   ColorVeryWeak,
		Weak:       ColorWeak,
		Fair:       ColorFair,
		Good:       ColorGood,
		Strong:     ColorStrong,
		VeryStrong: ColorVeryStrong,
		Background: ColorBackground,
		Text:       ColorText,
	}
}

// ColorForLevel returns the palette color for a level. The NoPassword
// sentinel maps to a neutral gray.
func (p Palette) ColorForLevel(l Level) color.RGBA {
	switch l {
	case LevelVeryWeak:
		return p.VeryWeak
	case LevelWeak:
		return p.Weak
	case LevelFair:
		return p.Fair
	case LevelGood:
		return p.Good
	case LevelStrong:
		return p.Strong
	case LevelVeryStrong:
		return p.VeryStrong
	}
	return ColorNoPassword
}

// ColorForScore maps a score straight to its level color
func (p Palette) ColorForScore(score float64, cuts Thresholds) color.RGBA {
	return p.ColorForLevel(LevelForScore(score, cuts))
}
