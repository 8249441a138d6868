// ABOUTME: Border painting: corners, title in the top edge, status bar in the bottom edge.
// ABOUTME: A shown scroll indicator swaps the right corners for ^ and v and marks the thumb with =.

package window

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/width"
)

const (
	scrollUp    = "^"
	scrollDown  = "v"
	scrollThumb = "="
)

type frameStyle struct {
	glyphs    lipgloss.Border
	palette   theme.Palette
	title     string
	status    string
	scrolling bool
	scrollPos float64
}

// drawFrame paints the border of r. Frames narrower or shorter than two
// cells have no room for a border and are skipped.
func drawFrame(d Display, r layout.Rect, fs frameStyle) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	g := fs.glyphs
	if g.Top == "" {
		g = theme.ASCIIBorder()
	}
	pal := fs.palette
	inner := r.Width - 2

	topRight, bottomRight := g.TopRight, g.BottomRight
	if fs.scrolling {
		topRight, bottomRight = scrollUp, scrollDown
	}

	// Top edge: title centered, padded with the horizontal glyph.
	title := ""
	if fs.title != "" {
		title = width.TruncateToWidth(" "+fs.title+" ", inner)
	}
	tw := width.VisibleWidth(title)
	left := (inner - tw) / 2
	right := inner - tw - left

	col := r.X
	d.PrintAt(r.Y, col, g.TopLeft+strings.Repeat(g.Top, left), pal.Border)
	col += 1 + left
	if title != "" {
		d.PrintAt(r.Y, col, title, pal.Title)
		col += tw
	}
	d.PrintAt(r.Y, col, strings.Repeat(g.Top, right), pal.Border)
	d.PrintAt(r.Y, r.Right()-1, topRight, cornerStyle(pal, fs.scrolling))

	// Bottom edge: status bar right-aligned.
	bottom := r.Bottom() - 1
	info := ""
	if fs.status != "" {
		info = width.TruncateToWidth(" "+fs.status+" ", inner)
	}
	iw := width.VisibleWidth(info)
	d.PrintAt(bottom, r.X, g.BottomLeft+strings.Repeat(g.Bottom, inner-iw), pal.Border)
	if info != "" {
		d.PrintAt(bottom, r.X+1+inner-iw, info, pal.Status)
	}
	d.PrintAt(bottom, r.Right()-1, bottomRight, cornerStyle(pal, fs.scrolling))

	// Sides, with the thumb on the right edge.
	rows := r.Height - 2
	thumb := -1
	if fs.scrolling && rows > 0 {
		thumb = min(rows-1, int(fs.scrollPos*float64(rows)))
	}
	for i := range rows {
		y := r.Y + 1 + i
		d.PrintAt(y, r.X, g.Left, pal.Border)
		if i == thumb {
			d.PrintAt(y, r.Right()-1, scrollThumb, pal.Scroll)
		} else {
			d.PrintAt(y, r.Right()-1, g.Right, pal.Border)
		}
	}
}

func cornerStyle(pal theme.Palette, scrolling bool) theme.Style {
	if scrolling {
		return pal.Scroll
	}
	return pal.Border
}
