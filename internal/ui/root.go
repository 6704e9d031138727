package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ultracanvas/ultratexter/internal/config"
	"github.com/ultracanvas/ultratexter/internal/meter"
)

// RootUI wires the main window: the password entry with its linked strength
// meters, the editor pane with find/replace history, the recent-files menu,
// and the preferences dialog.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	// UI components
	passwordEntry *widget.Entry
	barMeter      *StrengthMeter
	circularMeter *StrengthMeter
	editorEntry   *widget.Entry
	findEntry     *widget.Entry
	replaceEntry  *widget.Entry
	recentSelect  *widget.Select

	// History state, persisted through the store
	findHistory    []string
	replaceHistory []string
	recentFiles    []string
}

// NewRootUI creates and lays out the main window content
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, meterCfg meter.Config) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: NewLocalization(),
	}
	ui.localization.SetLanguage(settings.GetLanguage())
	ui.loadPersistedLists()
	ui.createUI(meterCfg)
	return ui
}

// loadPersistedLists restores the recent files and search history
func (ui *RootUI) loadPersistedLists() {
	store := ui.settings.Store()

	recent, err := store.LoadRecentFiles()
	if err != nil {
		log.Printf("Failed to load recent files: %v", err)
	}
	ui.recentFiles = recent

	find, replace, err := store.LoadSearchHistory()
	if err != nil {
		log.Printf("Failed to load search history: %v", err)
	}
	ui.findHistory = find
	ui.replaceHistory = replace
}

// createUI builds the window content
func (ui *RootUI) createUI(meterCfg meter.Config) {
	l := ui.localization

	// Password section: one entry drives both meter styles
	ui.passwordEntry = widget.NewPasswordEntry()
	ui.passwordEntry.SetPlaceHolder(l.GetText(KeyPasswordPlaceholder))

	barCfg := meterCfg
	barCfg.Style = meter.StyleBar
	ui.barMeter = NewStrengthMeter(barCfg)
	ui.barMeter.LinkEntry(ui.passwordEntry)

	circularCfg := meterCfg
	circularCfg.Style = meter.StyleCircular
	circularCfg.ShowPercentage = true
	ui.circularMeter = NewStrengthMeter(circularCfg)
	ui.circularMeter.LinkEntry(ui.passwordEntry)

	passwordSection := container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyPasswordSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.passwordEntry,
		container.NewBorder(nil, nil, nil, ui.circularMeter, ui.barMeter),
	)

	// Editor section with find/replace and recent files
	ui.editorEntry = widget.NewMultiLineEntry()
	ui.editorEntry.Wrapping = ui.wrapping()

	ui.findEntry = widget.NewEntry()
	ui.findEntry.SetPlaceHolder(l.GetText(KeyFindPlaceholder))
	ui.replaceEntry = widget.NewEntry()
	ui.replaceEntry.SetPlaceHolder(l.GetText(KeyReplacePlaceholder))

	findBtn := widget.NewButton(l.GetText(KeyFind), ui.onFind)
	replaceBtn := widget.NewButton(l.GetText(KeyReplace), ui.onReplace)
	searchRow := container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, nil, findBtn, ui.findEntry),
		container.NewBorder(nil, nil, nil, replaceBtn, ui.replaceEntry),
	)

	ui.recentSelect = widget.NewSelect(ui.recentOptions(), nil)
	ui.recentSelect.PlaceHolder = l.GetText(KeyRecentFiles)

	settingsBtn := widget.NewButton(IconSettings+" "+l.GetText(KeySettings), ui.onSettings)
	toolbar := container.NewBorder(nil, nil, ui.recentSelect, settingsBtn)

	editorSection := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle(l.GetText(KeyEditorSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			searchRow,
		),
		nil, nil, nil,
		ui.editorEntry,
	)

	content := container.NewBorder(
		container.NewVBox(toolbar, passwordSection, widget.NewSeparator()),
		nil, nil, nil,
		editorSection,
	)
	ui.window.SetContent(content)
}

// wrapping maps the word wrap preference onto the editor entry
func (ui *RootUI) wrapping() fyne.TextWrap {
	if ui.settings.GetWordWrap() {
		return fyne.TextWrapWord
	}
	return fyne.TextWrapOff
}

// recentOptions returns the dropdown entries for the recent-files list
func (ui *RootUI) recentOptions() []string {
	if len(ui.recentFiles) == 0 {
		return []string{ui.localization.GetText(KeyNoRecentFiles)}
	}
	return ui.recentFiles
}

// AddRecentFile puts a path at the front of the recent list and persists it
func (ui *RootUI) AddRecentFile(path string) {
	ui.recentFiles = config.PushRecentFile(ui.recentFiles, path)
	if err := ui.settings.Store().SaveRecentFiles(ui.recentFiles); err != nil {
		log.Printf("Failed to save recent files: %v", err)
	}
	ui.recentSelect.Options = ui.recentOptions()
	ui.recentSelect.Refresh()
}

// onFind records the query in the find history and persists both lists
func (ui *RootUI) onFind() {
	query := ui.findEntry.Text
	if query == "" {
		return
	}
	ui.findHistory = pushHistory(ui.findHistory, query)
	ui.saveSearchHistory()
}

// onReplace records the query and replacement, then persists both lists
func (ui *RootUI) onReplace() {
	query := ui.findEntry.Text
	replacement := ui.replaceEntry.Text
	if query != "" {
		ui.findHistory = pushHistory(ui.findHistory, query)
	}
	if replacement != "" {
		ui.replaceHistory = pushHistory(ui.replaceHistory, replacement)
	}
	ui.saveSearchHistory()
}

func (ui *RootUI) saveSearchHistory() {
	if err := ui.settings.Store().SaveSearchHistory(ui.findHistory, ui.replaceHistory); err != nil {
		log.Printf("Failed to save search history: %v", err)
	}
}

// pushHistory appends an entry unless it repeats the most recent one
func pushHistory(history []string, entry string) []string {
	if len(history) > 0 && history[len(history)-1] == entry {
		return history
	}
	return append(history, entry)
}

// onSettings opens the preferences dialog; applied changes are pushed into
// the live meters
func (ui *RootUI) onSettings() {
	dialog := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings)
	dialog.Show()
}

// applySettings re-reads the settings layer into the widgets
func (ui *RootUI) applySettings() {
	style := meter.Style(ui.settings.GetMeterStyle())
	ui.barMeter.SetStyle(style)
	ui.barMeter.SetShowLabel(ui.settings.GetMeterShowLabel())
	ui.barMeter.SetAnimationEnabled(ui.settings.GetMeterAnimations())
	ui.circularMeter.SetShowLabel(ui.settings.GetMeterShowLabel())
	ui.circularMeter.SetAnimationEnabled(ui.settings.GetMeterAnimations())

	ui.editorEntry.Wrapping = ui.wrapping()
	ui.editorEntry.Refresh()
	ui.app.Settings().SetTheme(NewAppTheme(ui.settings.GetThemeVariant()))
}
