package meter

import (
	"time"

	"github.com/ultracanvas/ultratexter/internal/strength"
)

// Style selects the visual representation of the meter
type Style string

const (
	// StyleBar renders a horizontal strip with a proportional fill
	StyleBar Style = "bar"

	// StyleCircular renders a ring with a proportional arc
	StyleCircular Style = "circular"
)

// Default configuration values
const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultBorderRadius      = 4
	DefaultBarHeight         = 10
	DefaultLabelFontSize     = 12.0
	DefaultPercentFontSize   = 14.0
)

// Config describes how a meter looks and behaves. Treat values as immutable
// once handed to a Meter; replace the whole record via SetConfig.
type Config struct {
	Style          Style
	ShowLabel      bool
	ShowPercentage bool

	AnimateTransitions bool
	AnimationDuration  time.Duration

	BorderRadius int
	BarHeight    int

	Thresholds strength.Thresholds
	Palette    strength.Palette
}

// DefaultConfig returns a bar-style meter with animation enabled
func DefaultConfig() Config {
	return Config{
		Style:              StyleBar,
		ShowLabel:          true,
		ShowPercentage:     false,
		AnimateTransitions: true,
		AnimationDuration:  DefaultAnimationDuration,
		BorderRadius:       DefaultBorderRadius,
		BarHeight:          DefaultBarHeight,
		Thresholds:         strength.DefaultThresholds(),
		Palette:            strength.DefaultPalette(),
	}
}

// normalize repairs out-of-range values so the meter never fails at render time
func (c Config) normalize() Config {
	if c.Style != StyleCircular {
		c.Style = StyleBar
	}
	if c.AnimationDuration < 0 {
		c.AnimationDuration = 0
	}
	if c.BorderRadius < 0 {
		c.BorderRadius = 0
	}
	if c.BarHeight < 1 {
		c.BarHeight = DefaultBarHeight
	}
	if !c.Thresholds.Valid() {
		c.Thresholds = strength.DefaultThresholds()
	}
	return c
}
