package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Current language = %s, expected en", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyFind); text != "Find" {
		t.Errorf("GetText(find) = %s, expected Find", text)
	}
}

func TestLocalization_SwitchLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if text := l.GetText(KeyFind); text != "Найти" {
		t.Errorf("GetText(find) = %s, expected Найти", text)
	}

	// Unknown languages keep the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Current language = %s, expected ru after rejecting unknown", l.GetCurrentLanguage())
	}
}

func TestLocalization_UnknownKeyFallsBack(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("nonexistent_key"); text != "nonexistent_key" {
		t.Errorf("GetText on unknown key = %s, expected the key itself", text)
	}
}

func TestLocalization_AvailableLanguages(t *testing.T) {
	l := NewLocalization()
	languages := l.GetAvailableLanguages()

	for _, code := range []string{"en", "ru"} {
		if _, exists := languages[code]; !exists {
			t.Errorf("Expected language option %q to exist", code)
		}
	}
}
