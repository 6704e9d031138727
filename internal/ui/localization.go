package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyPasswordPlaceholder = "password_placeholder"
	KeyPasswordSection     = "password_section"
	KeyEditorSection       = "editor_section"
	KeySettings            = "settings"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyFind                = "find"
	KeyReplace             = "replace"
	KeyFindPlaceholder     = "find_placeholder"
	KeyReplacePlaceholder  = "replace_placeholder"
	KeyRecentFiles         = "recent_files"
	KeyNoRecentFiles       = "no_recent_files"
	KeyFontSize            = "font_size"
	KeyWordWrap            = "word_wrap"
	KeyThemeVariant        = "theme_variant"
	KeyMeterStyle          = "meter_style"
	KeyMeterAnimations     = "meter_animations"
	KeyMeterShowLabel      = "meter_show_label"
	KeySettingsSaved       = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}
	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "UltraTexter",
		KeyPasswordPlaceholder: "Enter password",
		KeyPasswordSection:     "Password strength",
		KeyEditorSection:       "Editor",
		KeySettings:            "Settings",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyFind:                "Find",
		KeyReplace:             "Replace",
		KeyFindPlaceholder:     "Search text",
		KeyReplacePlaceholder:  "Replacement text",
		KeyRecentFiles:         "Recent files",
		KeyNoRecentFiles:       "No recent files",
		KeyFontSize:            "Font size",
		KeyWordWrap:            "Word wrap",
		KeyThemeVariant:        "Theme",
		KeyMeterStyle:          "Meter style",
		KeyMeterAnimations:     "Animate transitions",
		KeyMeterShowLabel:      "Show strength label",
		KeySettingsSaved:       "Settings saved",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "UltraTexter",
		KeyPasswordPlaceholder: "Введите пароль",
		KeyPasswordSection:     "Надёжность пароля",
		KeyEditorSection:       "Редактор",
		KeySettings:            "Настройки",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyFind:                "Найти",
		KeyReplace:             "Заменить",
		KeyFindPlaceholder:     "Текст для поиска",
		KeyReplacePlaceholder:  "Текст замены",
		KeyRecentFiles:         "Недавние файлы",
		KeyNoRecentFiles:       "Нет недавних файлов",
		KeyFontSize:            "Размер шрифта",
		KeyWordWrap:            "Перенос строк",
		KeyThemeVariant:        "Тема",
		KeyMeterStyle:          "Стиль индикатора",
		KeyMeterAnimations:     "Анимация переходов",
		KeyMeterShowLabel:      "Показывать уровень",
		KeySettingsSaved:       "Настройки сохранены",
	}
}
