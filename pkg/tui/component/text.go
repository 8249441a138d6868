// ABOUTME: Text is a scrollable read-only window that wraps and auto-sizes to its content.
// ABOUTME: Lines are re-wrapped on every resize; arrows, PgUp/PgDn, Home and End scroll.

package component

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/termwindows/internal/keybindings"
	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/clipboard"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/width"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

// Minimum auto size of a text window, border included.
const (
	MinTextWidth  = 10
	MinTextHeight = 6
)

const scrollHint = "Arrows/PgUp/PgDn=Scroll"

var _ window.Window = (*Text)(nil)

// Text shows a block of text. With Auto width or height the window sizes
// itself to the wrapped text, capped by the resolver's auto ceiling.
type Text struct {
	*window.Base

	text   string
	lines  []string
	scroll int

	closeHint string
	render    func(text string, width int) []string
}

// NewText creates a text window over d. A nil d defers layout until the
// window is pushed.
func NewText(d window.Display, text string, opts ...window.Option) (*Text, error) {
	return newText(d, text, wrapText, opts...)
}

func newText(d window.Display, text string, render func(string, int) []string, opts ...window.Option) (*Text, error) {
	b, err := window.NewBase(d, opts...)
	if err != nil {
		return nil, err
	}
	t := &Text{
		Base:      b,
		text:      prepare(text),
		closeHint: b.StatusBar(),
		render:    render,
	}
	t.HandleResize()
	return t, nil
}

// prepare normalises text for display: NFC so combining sequences wrap as
// one cluster, control characters removed, one trailing newline dropped.
func prepare(s string) string {
	s = width.Sanitize(norm.NFC.String(s))
	return strings.TrimSuffix(s, "\n")
}

func wrapText(text string, w int) []string {
	return width.WrapWords(text, w)
}

// Text returns the displayed text after normalisation.
func (t *Text) Text() string { return t.text }

// SetText replaces the text, scrolls to the top and re-lays out.
func (t *Text) SetText(s string) {
	t.text = prepare(s)
	t.scroll = 0
	t.HandleResize()
}

// Lines returns the wrapped lines.
func (t *Text) Lines() []string { return t.lines }

// Offset returns the index of the first visible line.
func (t *Text) Offset() int { return t.scroll }

// HandleResize re-wraps the text for the new container and updates the
// natural size used by Auto dimensions.
func (t *Text) HandleResize() {
	t.Base.HandleResize()

	cont := t.Container()
	r := t.Resolver()
	maxW, maxH := r.Limit(cont.Width), r.Limit(cont.Height)
	chrome := 0
	if t.HasBorder() {
		chrome = 2
	}

	// One column of padding each side of the text.
	t.lines = t.render(t.text, max(1, maxW-chrome-2))
	if len(t.lines) == 0 {
		t.lines = []string{""}
	}

	longest := 0
	for _, l := range t.lines {
		longest = max(longest, width.VisibleWidth(l))
	}
	t.SetNaturalSize(&layout.Size{
		Width:  max(MinTextWidth, min(maxW, longest+2+chrome)),
		Height: max(MinTextHeight, min(maxH, len(t.lines)+chrome)),
	})

	t.scroll = min(t.scroll, t.maxScroll())
	t.updateChrome()
	t.Invalidate()
}

func (t *Text) maxScroll() int {
	return max(0, len(t.lines)-t.Content().Height)
}

// updateChrome syncs the scroll indicator and status hint with the offset.
func (t *Text) updateChrome() {
	below := t.maxScroll()
	if below == 0 {
		t.ClearScroll()
		t.SetStatusBar(t.closeHint)
		return
	}
	t.SetScroll(float64(t.scroll) / float64(below))
	switch {
	case t.closeHint == "":
	case strings.HasPrefix(t.closeHint, "["):
		t.SetStatusBar("[" + scrollHint + ", " + t.closeHint[1:])
	default:
		t.SetStatusBar(scrollHint + ", " + t.closeHint)
	}
}

// Draw paints the frame, then the visible lines padded to cover every
// content cell.
func (t *Text) Draw() {
	t.Base.Draw()

	c := t.Content()
	if c.Width <= 0 {
		return
	}
	st := t.Theme().Palette.Text
	for row := range c.Height {
		line := ""
		if i := t.scroll + row; i < len(t.lines) {
			line = t.lines[i]
		}
		t.PrintContent(row, 0, width.Fit(" "+line, c.Width), st)
	}
}

// HandleInput scrolls with the navigation bindings when the text
// overflows; other keys go to Base.
func (t *Text) HandleInput(k key.Key) {
	action := keybindings.Current().ActionForKey(k)
	if action == keybindings.ActionCopy {
		t.copy()
		return
	}

	limit := t.maxScroll()
	if limit == 0 {
		t.Base.HandleInput(k)
		return
	}

	page := max(1, t.Content().Height)
	next := t.scroll
	switch action {
	case keybindings.ActionDown:
		next++
	case keybindings.ActionUp:
		next--
	case keybindings.ActionPageDown:
		next += page
	case keybindings.ActionPageUp:
		next -= page
	case keybindings.ActionHome:
		next = 0
	case keybindings.ActionEnd:
		next = limit
	default:
		t.Base.HandleInput(k)
		return
	}
	t.scrollTo(max(0, min(limit, next)))
}

// copyText writes to the system clipboard; tests replace it.
var copyText = clipboard.Write

func (t *Text) copy() {
	if err := copyText(t.text); err != nil {
		log.Warn("text: copy: %v", err)
		return
	}
	log.Debug("text: copied %d bytes", len(t.text))
}

func (t *Text) scrollTo(n int) {
	if n == t.scroll {
		return
	}
	t.scroll = n
	t.updateChrome()
	t.Invalidate()
}
