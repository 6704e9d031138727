package config

import "testing"

func newTestSettings(t *testing.T) *Settings {
	t.Helper()
	return NewSettings(NewStore(t.TempDir()))
}

func TestSettings_FontSize(t *testing.T) {
	s := newTestSettings(t)

	if size := s.GetFontSize(); size != DefaultFontSize {
		t.Errorf("Default font size = %d, expected %d", size, DefaultFontSize)
	}

	s.SetFontSize(18)
	if size := s.GetFontSize(); size != 18 {
		t.Errorf("Font size = %d, expected 18", size)
	}

	// Boundary values are clamped
	s.SetFontSize(2)
	if size := s.GetFontSize(); size != MinFontSize {
		t.Errorf("Font size = %d, expected clamp to %d", size, MinFontSize)
	}
	s.SetFontSize(500)
	if size := s.GetFontSize(); size != MaxFontSize {
		t.Errorf("Font size = %d, expected clamp to %d", size, MaxFontSize)
	}
}

func TestSettings_FontSize_IgnoresCorruptStoredValue(t *testing.T) {
	s := newTestSettings(t)
	s.Store().SetString(KeyFontSize, "750")

	if size := s.GetFontSize(); size != DefaultFontSize {
		t.Errorf("Font size = %d, expected default for out-of-range stored value", size)
	}
}

func TestSettings_WordWrap(t *testing.T) {
	s := newTestSettings(t)

	if !s.GetWordWrap() {
		t.Error("Word wrap should default to true")
	}
	s.SetWordWrap(false)
	if s.GetWordWrap() {
		t.Error("Word wrap = true after SetWordWrap(false)")
	}
}

func TestSettings_ThemeVariant(t *testing.T) {
	s := newTestSettings(t)

	if v := s.GetThemeVariant(); v != DefaultThemeVariant {
		t.Errorf("Default theme variant = %s, expected %s", v, DefaultThemeVariant)
	}

	s.SetThemeVariant("dark")
	if v := s.GetThemeVariant(); v != "dark" {
		t.Errorf("Theme variant = %s, expected dark", v)
	}

	s.SetThemeVariant("neon")
	if v := s.GetThemeVariant(); v != DefaultThemeVariant {
		t.Errorf("Theme variant = %s, expected fallback to %s", v, DefaultThemeVariant)
	}
}

func TestSettings_MeterStyle(t *testing.T) {
	s := newTestSettings(t)

	if v := s.GetMeterStyle(); v != DefaultMeterStyle {
		t.Errorf("Default meter style = %s, expected %s", v, DefaultMeterStyle)
	}

	s.SetMeterStyle("circular")
	if v := s.GetMeterStyle(); v != "circular" {
		t.Errorf("Meter style = %s, expected circular", v)
	}

	s.SetMeterStyle("triangle")
	if v := s.GetMeterStyle(); v != DefaultMeterStyle {
		t.Errorf("Meter style = %s, expected fallback to %s", v, DefaultMeterStyle)
	}
}

func TestSettings_PersistThroughStore(t *testing.T) {
	store := NewStore(t.TempDir())
	s := NewSettings(store)
	s.SetFontSize(16)
	s.SetMeterAnimations(false)

	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fresh := NewStore(store.Dir())
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	reloaded := NewSettings(fresh)

	if size := reloaded.GetFontSize(); size != 16 {
		t.Errorf("Reloaded font size = %d, expected 16", size)
	}
	if reloaded.GetMeterAnimations() {
		t.Error("Reloaded meter animations = true, expected false")
	}
}
