package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconSearch   = "🔍"
	IconClose    = "×"
)

// Window sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 520
)

// Strength meter sizing
const (
	MeterBarMinWidth     float32 = 160
	MeterBarMinHeight    float32 = 36
	MeterCircularMinSize float32 = 110
)

// Arc tessellation: segment count for a full circle sweep
const (
	ArcSegmentsFull = 64
	ArcSegmentsMin  = 8
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)

// Palette preset file name inside the config directory
const PaletteFileName = "palette.toml"
