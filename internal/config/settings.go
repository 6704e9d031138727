package config

// Settings keys in the config file
const (
	KeyFontSize        = "editor.font_size"
	KeyWordWrap        = "editor.word_wrap"
	KeyThemeVariant    = "ui.theme_variant"
	KeyLanguage        = "ui.language"
	KeyMeterStyle      = "meter.style"
	KeyMeterAnimations = "meter.animations"
	KeyMeterShowLabel  = "meter.show_label"
)

// Default values
const (
	DefaultFontSize     = 14
	MinFontSize         = 8
	MaxFontSize         = 72
	DefaultWordWrap     = true
	DefaultThemeVariant = "system"
	DefaultLanguage     = "en"
	DefaultMeterStyle   = "bar"
)

// Settings manages typed application preferences on top of the Store
type Settings struct {
	store *Store
}

// NewSettings creates a settings manager backed by the given store
func NewSettings(store *Store) *Settings {
	return &Settings{store: store}
}

// Store exposes the backing store, e.g. for an explicit Save
func (s *Settings) Store() *Store {
	return s.store
}

// GetFontSize returns the editor font size, clamped to a sane range
func (s *Settings) GetFontSize() int {
	size := s.store.GetInt(KeyFontSize, DefaultFontSize)
	if size < MinFontSize || size > MaxFontSize {
		return DefaultFontSize
	}
	return size
}

// SetFontSize sets the editor font size with clamping
func (s *Settings) SetFontSize(size int) {
	if size < MinFontSize {
		size = MinFontSize
	}
	if size > MaxFontSize {
		size = MaxFontSize
	}
	s.store.SetInt(KeyFontSize, size)
}

// GetWordWrap returns whether the editor wraps long lines
func (s *Settings) GetWordWrap() bool {
	return s.store.GetBool(KeyWordWrap, DefaultWordWrap)
}

// SetWordWrap sets the word wrap preference
func (s *Settings) SetWordWrap(wrap bool) {
	s.store.SetBool(KeyWordWrap, wrap)
}

// GetThemeVariant returns "system", "light" or "dark"
func (s *Settings) GetThemeVariant() string {
	variant := s.store.GetString(KeyThemeVariant, DefaultThemeVariant)
	switch variant {
	case "light", "dark", "system":
		return variant
	}
	return DefaultThemeVariant
}

// SetThemeVariant sets the theme variant; unknown values fall back to system
func (s *Settings) SetThemeVariant(variant string) {
	switch variant {
	case "light", "dark", "system":
	default:
		variant = DefaultThemeVariant
	}
	s.store.SetString(KeyThemeVariant, variant)
}

// GetLanguage returns the UI language code
func (s *Settings) GetLanguage() string {
	lang := s.store.GetString(KeyLanguage, DefaultLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language code
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.store.SetString(KeyLanguage, lang)
}

// GetMeterStyle returns "bar" or "circular"
func (s *Settings) GetMeterStyle() string {
	style := s.store.GetString(KeyMeterStyle, DefaultMeterStyle)
	if style != "circular" {
		return DefaultMeterStyle
	}
	return style
}

// SetMeterStyle sets the meter style; unknown values fall back to bar
func (s *Settings) SetMeterStyle(style string) {
	if style != "circular" {
		style = DefaultMeterStyle
	}
	s.store.SetString(KeyMeterStyle, style)
}

// GetMeterAnimations returns whether meter transitions are animated
func (s *Settings) GetMeterAnimations() bool {
	return s.store.GetBool(KeyMeterAnimations, true)
}

// SetMeterAnimations sets the animation preference
func (s *Settings) SetMeterAnimations(enabled bool) {
	s.store.SetBool(KeyMeterAnimations, enabled)
}

// GetMeterShowLabel returns whether the meter draws the level token
func (s *Settings) GetMeterShowLabel() bool {
	return s.store.GetBool(KeyMeterShowLabel, true)
}

// SetMeterShowLabel sets the label visibility preference
func (s *Settings) SetMeterShowLabel(show bool) {
	s.store.SetBool(KeyMeterShowLabel, show)
}
