package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ultracanvas/ultratexter/internal/config"
)

// SettingsDialog represents the preferences dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	fontSizeEntry  *widget.Entry
	wordWrapCheck  *widget.Check
	themeSelect    *widget.Select
	styleSelect    *widget.Select
	animationCheck *widget.Check
	showLabelCheck *widget.Check

	// Called after settings were applied and persisted
	onApplied func()
}

// NewSettingsDialog creates a new preferences dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onApplied func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onApplied:    onApplied,
	}

	sd.createUI()
	return sd
}

// Show displays the dialog with the current settings loaded
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.fontSizeEntry = widget.NewEntry()
	sd.fontSizeEntry.SetPlaceHolder(strconv.Itoa(config.DefaultFontSize))

	sd.wordWrapCheck = widget.NewCheck("", nil)
	sd.themeSelect = widget.NewSelect([]string{"system", "light", "dark"}, nil)
	sd.styleSelect = widget.NewSelect([]string{"bar", "circular"}, nil)
	sd.animationCheck = widget.NewCheck("", nil)
	sd.showLabelCheck = widget.NewCheck("", nil)

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(l.GetText(KeyFontSize), sd.fontSizeEntry),
			widget.NewFormItem(l.GetText(KeyWordWrap), sd.wordWrapCheck),
			widget.NewFormItem(l.GetText(KeyThemeVariant), sd.themeSelect),
			widget.NewFormItem(l.GetText(KeyMeterStyle), sd.styleSelect),
			widget.NewFormItem(l.GetText(KeyMeterAnimations), sd.animationCheck),
			widget.NewFormItem(l.GetText(KeyMeterShowLabel), sd.showLabelCheck),
		),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings fills the form from the settings layer
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.fontSizeEntry.SetText(strconv.Itoa(sd.settings.GetFontSize()))
	sd.wordWrapCheck.SetChecked(sd.settings.GetWordWrap())
	sd.themeSelect.SetSelected(sd.settings.GetThemeVariant())
	sd.styleSelect.SetSelected(sd.settings.GetMeterStyle())
	sd.animationCheck.SetChecked(sd.settings.GetMeterAnimations())
	sd.showLabelCheck.SetChecked(sd.settings.GetMeterShowLabel())
}

// onConfirm applies the form to the settings layer and persists the store
func (sd *SettingsDialog) onConfirm(save bool) {
	if !save {
		return
	}

	if size, err := strconv.Atoi(sd.fontSizeEntry.Text); err == nil {
		sd.settings.SetFontSize(size)
	}
	sd.settings.SetWordWrap(sd.wordWrapCheck.Checked)
	sd.settings.SetThemeVariant(sd.themeSelect.Selected)
	sd.settings.SetMeterStyle(sd.styleSelect.Selected)
	sd.settings.SetMeterAnimations(sd.animationCheck.Checked)
	sd.settings.SetMeterShowLabel(sd.showLabelCheck.Checked)

	if err := sd.settings.Store().Save(); err != nil {
		log.Printf("Failed to save settings: %v", err)
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onApplied != nil {
		sd.onApplied()
	}
}
