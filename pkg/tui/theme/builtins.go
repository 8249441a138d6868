// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "github.com/charmbracelet/lipgloss"

func builtinThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": {
			Name:       "default",
			BorderName: "ascii",
			Border:     ASCIIBorder(),
			Palette:    DefaultPalette(),
		},
		"dark": {
			Name:       "dark",
			BorderName: "rounded",
			Border:     lipgloss.RoundedBorder(),
			Palette: Palette{
				Text:      Style{Fg: "252"},
				Border:    Style{Fg: "240"},
				Title:     Style{Fg: "214", Bold: true},
				Status:    Style{Fg: "245"},
				Scroll:    Style{Fg: "117"},
				Selection: Style{Fg: "231", Bg: "236", Bold: true},
				Filter:    Style{Fg: "221"},
			},
		},
		"light": {
			Name:       "light",
			BorderName: "rounded",
			Border:     lipgloss.RoundedBorder(),
			Palette: Palette{
				Text:      Style{Fg: "235"},
				Border:    Style{Fg: "249"},
				Title:     Style{Fg: "166", Bold: true},
				Status:    Style{Fg: "243"},
				Scroll:    Style{Fg: "25"},
				Selection: Style{Fg: "16", Bg: "254", Bold: true},
				Filter:    Style{Fg: "130"},
			},
		},
		"monochrome": {
			Name:       "monochrome",
			BorderName: "normal",
			Border:     lipgloss.NormalBorder(),
			Palette: Palette{
				Border:    Style{Dim: true},
				Title:     Style{Bold: true},
				Status:    Style{Dim: true},
				Scroll:    Style{Bold: true},
				Selection: Style{Reverse: true},
				Filter:    Style{Bold: true},
			},
		},
	}
}

var builtins = builtinThemes()

// Builtin returns a copy of a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	th, ok := builtins[name]
	if !ok {
		return nil
	}
	cp := *th
	return &cp
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
