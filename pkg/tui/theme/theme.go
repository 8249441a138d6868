// ABOUTME: Window chrome theme types: Style, Palette, Theme
// ABOUTME: Styles hold lipgloss color strings; Render applies them through lipgloss

package theme

import "github.com/charmbracelet/lipgloss"

// Style describes how a run of cells is painted. Colors use lipgloss
// notation: an ANSI index ("205"), a hex value ("#ff8700"), or empty
// for the terminal default.
type Style struct {
	Fg      string `yaml:"fg,omitempty"`
	Bg      string `yaml:"bg,omitempty"`
	Bold    bool   `yaml:"bold,omitempty"`
	Dim     bool   `yaml:"dim,omitempty"`
	Reverse bool   `yaml:"reverse,omitempty"`
}

// IsZero reports whether s leaves every attribute at the terminal default.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Lipgloss converts s to a lipgloss style.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(lipgloss.Color(s.Bg))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Dim {
		st = st.Faint(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

// Render wraps text in the escape codes for s. Zero styles return text unchanged.
func (s Style) Render(text string) string {
	if s.IsZero() || text == "" {
		return text
	}
	return s.Lipgloss().Render(text)
}

// Palette maps window chrome roles to styles.
type Palette struct {
	Text      Style `yaml:"text"`
	Border    Style `yaml:"border"`
	Title     Style `yaml:"title"`
	Status    Style `yaml:"status"`
	Scroll    Style `yaml:"scroll"`
	Selection Style `yaml:"selection"`
	Filter    Style `yaml:"filter"`
}

// Theme is a named palette plus the glyph set used for borders.
type Theme struct {
	Name       string          `yaml:"name"`
	BorderName string          `yaml:"border"`
	Border     lipgloss.Border `yaml:"-"`
	Palette    Palette         `yaml:"palette"`
}

// DefaultPalette leaves text uncolored and highlights selections in reverse video.
func DefaultPalette() Palette {
	return Palette{
		Selection: Style{Reverse: true},
		Filter:    Style{Bold: true},
	}
}
