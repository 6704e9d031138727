package ui

// Package ui contains the Fyne-based desktop user interface: the strength
// meter widget, the application theme and palette presets, the preferences
// dialog, and the root window wiring the meter to a password entry and the
// editor pane to the configuration store. All UI strings are localized via
// Localization.
