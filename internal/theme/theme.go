// Package theme holds the colour palettes used to paint the editor window.
package theme

import (
	"image/color"
	"sort"
	"strings"
)

// Theme defines the colours of the window chrome around the canvas.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // area around the canvas
	Foreground color.RGBA // label text

	// Toolbar
	ToolbarBackground color.RGBA
	ButtonBackground  color.RGBA
	ButtonHover       color.RGBA
	ButtonActive      color.RGBA
	ButtonText        color.RGBA
	ButtonBorder      color.RGBA
	StatusBackground  color.RGBA
	StatusText        color.RGBA

	// Canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
	AntsLight    color.RGBA // marching ants, even dashes
	AntsDark     color.RGBA // marching ants, odd dashes
}

// Default returns the light theme used when nothing else is configured.
func Default() *Theme {
	return &Theme{
		Name:              "default",
		Background:        color.RGBA{200, 200, 200, 255},
		Foreground:        color.RGBA{0, 0, 0, 255},
		ToolbarBackground: color.RGBA{220, 220, 220, 255},
		ButtonBackground:  color.RGBA{205, 205, 205, 255},
		ButtonHover:       color.RGBA{185, 185, 185, 255},
		ButtonActive:      color.RGBA{150, 150, 150, 255},
		ButtonText:        color.RGBA{0, 0, 0, 255},
		ButtonBorder:      color.RGBA{90, 90, 90, 255},
		StatusBackground:  color.RGBA{230, 230, 230, 255},
		StatusText:        color.RGBA{40, 40, 40, 255},
		CheckerLight:      color.RGBA{220, 220, 220, 255},
		CheckerDark:       color.RGBA{192, 192, 192, 255},
		AntsLight:         color.RGBA{255, 255, 255, 255},
		AntsDark:          color.RGBA{0, 0, 0, 255},
	}
}

// Dark returns a dark variant of Default.
func Dark() *Theme {
	t := Default()
	t.Name = "dark"
	t.Background = color.RGBA{45, 45, 48, 255}
	t.Foreground = color.RGBA{230, 230, 230, 255}
	t.ToolbarBackground = color.RGBA{37, 37, 38, 255}
	t.ButtonBackground = color.RGBA{62, 62, 66, 255}
	t.ButtonHover = color.RGBA{80, 80, 85, 255}
	t.ButtonActive = color.RGBA{0, 122, 204, 255}
	t.ButtonText = color.RGBA{230, 230, 230, 255}
	t.ButtonBorder = color.RGBA{20, 20, 20, 255}
	t.StatusBackground = color.RGBA{0, 122, 204, 255}
	t.StatusText = color.RGBA{255, 255, 255, 255}
	t.CheckerLight = color.RGBA{90, 90, 90, 255}
	t.CheckerDark = color.RGBA{70, 70, 70, 255}
	return t
}

// HighContrast returns a black and yellow theme.
func HighContrast() *Theme {
	t := Dark()
	t.Name = "high-contrast"
	t.Background = color.RGBA{0, 0, 0, 255}
	t.ToolbarBackground = color.RGBA{0, 0, 0, 255}
	t.ButtonBackground = color.RGBA{0, 0, 0, 255}
	t.ButtonActive = color.RGBA{255, 255, 0, 255}
	t.ButtonText = color.RGBA{255, 255, 0, 255}
	t.ButtonBorder = color.RGBA{255, 255, 0, 255}
	t.AntsLight = color.RGBA{255, 255, 0, 255}
	return t
}

var builtin = map[string]func() *Theme{
	"default":       Default,
	"light":         Default,
	"dark":          Dark,
	"high-contrast": HighContrast,
}

// Builtin returns a copy of the named built-in theme.
func Builtin(name string) (*Theme, bool) {
	fn, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// BuiltinNames lists the built-in theme names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
