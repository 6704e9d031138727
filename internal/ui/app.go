package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ultracanvas/ultratexter/internal/config"
	"github.com/ultracanvas/ultratexter/internal/meter"
	"github.com/ultracanvas/ultratexter/internal/platform"
)

// AppID identifies the application to the windowing system
const AppID = "com.ultracanvas.ultratexter"

// RunOptions override the persisted preferences for a single launch
type RunOptions struct {
	// ConfigDir overrides the per-OS config directory; empty means default
	ConfigDir string

	// MeterStyle forces "bar" or "circular"; empty keeps the stored preference
	MeterStyle string

	// DisableAnimation turns off meter transitions for this run
	DisableAnimation bool

	// WindowTitle overrides the localized default title
	WindowTitle string
}

// RunApp loads the configuration, builds the root window and runs the Fyne
// event loop until the window closes
func RunApp(opts RunOptions) error {
	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = platform.ConfigDir()
	}

	store := config.NewStore(configDir)
	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	settings := config.NewSettings(store)

	palette, err := LoadPaletteFile(filepath.Join(configDir, PaletteFileName))
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	meterCfg := meter.DefaultConfig()
	meterCfg.Palette = palette
	meterCfg.Style = meter.Style(settings.GetMeterStyle())
	meterCfg.ShowLabel = settings.GetMeterShowLabel()
	meterCfg.AnimateTransitions = settings.GetMeterAnimations()
	if opts.MeterStyle != "" {
		meterCfg.Style = meter.Style(opts.MeterStyle)
	}
	if opts.DisableAnimation {
		meterCfg.AnimateTransitions = false
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(NewAppTheme(settings.GetThemeVariant()))

	title := opts.WindowTitle
	if title == "" {
		title = NewLocalization().GetText(KeyAppTitle)
	}
	window := fyneApp.NewWindow(title)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootUI(window, fyneApp, settings, meterCfg)

	window.ShowAndRun()
	return nil
}
