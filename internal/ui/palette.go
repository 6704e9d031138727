package ui

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ultracanvas/ultratexter/internal/strength"
)

// paletteFile maps the optional palette.toml preset. Every field is a hex
// color like "#b71c1c"; absent fields keep their defaults.
type paletteFile struct {
	VeryWeak   string `toml:"very_weak"`
	Weak       string `toml:"weak"`
	Fair       string `toml:"fair"`
	Good       string `toml:"good"`
	Strong     string `toml:"strong"`
	VeryStrong string `toml:"very_strong"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
}

// LoadPaletteFile reads a TOML palette preset. A missing file is not an error
// and yields the default palette; a malformed file or color is.
func LoadPaletteFile(path string) (strength.Palette, error) {
	palette := strength.DefaultPalette()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return palette, nil
		}
		return palette, fmt.Errorf("failed to stat palette file: %w", err)
	}

	var pf paletteFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return palette, fmt.Errorf("failed to decode palette file: %w", err)
	}

	fields := []struct {
		hex    string
		target *color.RGBA
	}{
		{pf.VeryWeak, &palette.VeryWeak},
		{pf.Weak, &palette.Weak},
		{pf.Fair, &palette.Fair},
		{pf.Good, &palette.Good},
		{pf.Strong, &palette.Strong},
		{pf.VeryStrong, &palette.VeryStrong},
		{pf.Background, &palette.Background},
		{pf.Text, &palette.Text},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := parseHexColor(f.hex)
		if err != nil {
			return strength.DefaultPalette(), err
		}
		*f.target = c
	}
	return palette, nil
}

// parseHexColor parses "#rgb" and "#rrggbb" notations
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}, nil
}
