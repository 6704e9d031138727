package strength

import "testing"

func TestLevelForScore_DefaultThresholds(t *testing.T) {
	tests := []struct {
		score    float64
		expected Level
	}{
		{0, LevelVeryWeak},
		{19.9, LevelVeryWeak},
		{20, LevelWeak},
		{39.9, LevelWeak},
		{40, LevelFair},
		{59.9, LevelFair},
		{60, LevelGood},
		{79.9, LevelGood},
		{80, LevelStrong},
		{94.9, LevelStrong},
		{95, LevelVeryStrong},
		{100, LevelVeryStrong},
	}

	cuts := DefaultThresholds()
	for _, tt := range tests {
		result := LevelForScore(tt.score, cuts)
		if result != tt.expected {
			t.Errorf("LevelForScore(%v) = %s, expected %s", tt.score, result, tt.expected)
		}
	}
}

func TestLevelForScore_ClampsOutOfRange(t *testing.T) {
	cuts := DefaultThresholds()

	if level := LevelForScore(-10, cuts); level != LevelVeryWeak {
		t.Errorf("LevelForScore(-10) = %s, expected VeryWeak", level)
	}
	if level := LevelForScore(250, cuts); level != LevelVeryStrong {
		t.Errorf("LevelForScore(250) = %s, expected VeryStrong", level)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNoPassword, "NoPassword"},
		{LevelVeryWeak, "VeryWeak"},
		{LevelWeak, "Weak"},
		{LevelFair, "Fair"},
		{LevelGood, "Good"},
		{LevelStrong, "Strong"},
		{LevelVeryStrong, "VeryStrong"},
		{Level(42), "Unknown"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("Level(%d).String() = %s, expected %s", tt.level, result, tt.expected)
		}
	}
}

func TestThresholds_Valid(t *testing.T) {
	tests := []struct {
		name     string
		cuts     Thresholds
		expected bool
	}{
		{"default", DefaultThresholds(), true},
		{"flat", Thresholds{50, 50, 50, 50, 50}, true},
		{"descending", Thresholds{40, 20, 60, 80, 95}, false},
		{"above range", Thresholds{20, 40, 60, 80, 120}, false},
		{"below range", Thresholds{-5, 40, 60, 80, 95}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.cuts.Valid(); result != tt.expected {
				t.Errorf("Valid() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestPalette_ColorForScore(t *testing.T) {
	p := DefaultPalette()
	cuts := DefaultThresholds()

	tests := []struct {
		score    float64
		expected [4]uint8
	}{
		{0, [4]uint8{p.VeryWeak.R, p.VeryWeak.G, p.VeryWeak.B, p.VeryWeak.A}},
		{25, [4]uint8{p.Weak.R, p.Weak.G, p.Weak.B, p.Weak.A}},
		{45, [4]uint8{p.Fair.R, p.Fair.G, p.Fair.B, p.Fair.A}},
		{65, [4]uint8{p.Good.R, p.Good.G, p.Good.B, p.Good.A}},
		{85, [4]uint8{p.Strong.R, p.Strong.G, p.Strong.B, p.Strong.A}},
		{100, [4]uint8{p.VeryStrong.R, p.VeryStrong.G, p.VeryStrong.B, p.VeryStrong.A}},
	}

	for _, tt := range tests {
		c := p.ColorForScore(tt.score, cuts)
		got := [4]uint8{c.R, c.G, c.B, c.A}
		if got != tt.expected {
			t.Errorf("ColorForScore(%v) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestPalette_ColorForLevel_NoPassword(t *testing.T) {
	p := DefaultPalette()
	if c := p.ColorForLevel(LevelNoPassword); c != ColorNoPassword {
		t.Errorf("ColorForLevel(NoPassword) = %v, expected neutral gray %v", c, ColorNoPassword)
	}
}
