// ABOUTME: Named border glyph sets for window frames
// ABOUTME: ascii matches plain terminals; the rest come from lipgloss

package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ASCIIBorder draws frames with '+', '-' and '|' only.
func ASCIIBorder() lipgloss.Border {
	return lipgloss.Border{
		Top:          "-",
		Bottom:       "-",
		Left:         "|",
		Right:        "|",
		TopLeft:      "+",
		TopRight:     "+",
		BottomLeft:   "+",
		BottomRight:  "+",
		MiddleLeft:   "+",
		MiddleRight:  "+",
		Middle:       "+",
		MiddleTop:    "+",
		MiddleBottom: "+",
	}
}

var borders = map[string]func() lipgloss.Border{
	"ascii":   ASCIIBorder,
	"normal":  lipgloss.NormalBorder,
	"rounded": lipgloss.RoundedBorder,
	"double":  lipgloss.DoubleBorder,
	"thick":   lipgloss.ThickBorder,
}

// BorderByName returns the glyph set registered under name.
func BorderByName(name string) (lipgloss.Border, error) {
	fn, ok := borders[name]
	if !ok {
		return lipgloss.Border{}, fmt.Errorf("unknown border %q", name)
	}
	return fn(), nil
}

// BorderNames lists the registered glyph sets in sorted order.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for n := range borders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
