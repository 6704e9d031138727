package meter

// Package meter implements the strength meter core independent of any UI
// framework: the meter configuration, the score/animation state machine, and
// the bar/circular painting routines expressed against the DrawContext
// interface. The Fyne widget in internal/ui is a thin shell around this core.
