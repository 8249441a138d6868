// ABOUTME: Markdown is a Text window whose lines come from glamour at the wrap width.
// ABOUTME: Renders are cached by content hash and width; failures fall back to plain wrapping.

package component

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/width"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

// DefaultMarkdownStyle is the glamour style used for rendering. Windows
// print plain cells, so a style without colors keeps layout exact.
const DefaultMarkdownStyle = "notty"

var _ window.Window = (*Markdown)(nil)

// Markdown displays rendered markdown. It scrolls and sizes like Text.
type Markdown struct {
	*Text
	renderer *MarkdownRenderer
}

// NewMarkdown creates a markdown window over d using r. A nil r gets a
// fresh renderer with DefaultMarkdownStyle.
func NewMarkdown(d window.Display, source string, r *MarkdownRenderer, opts ...window.Option) (*Markdown, error) {
	if r == nil {
		r = NewMarkdownRenderer(DefaultMarkdownStyle)
	}
	t, err := newText(d, source, r.Lines, opts...)
	if err != nil {
		return nil, err
	}
	return &Markdown{Text: t, renderer: r}, nil
}

// MarkdownRenderer wraps glamour with a render cache.
type MarkdownRenderer struct {
	style string

	mu    sync.Mutex
	cache map[string][]string
}

// NewMarkdownRenderer returns a renderer for the named glamour style.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = DefaultMarkdownStyle
	}
	return &MarkdownRenderer{style: style, cache: make(map[string][]string)}
}

// Lines renders md wrapped to w columns and returns its lines without
// escape sequences or trailing padding.
func (r *MarkdownRenderer) Lines(md string, w int) []string {
	if strings.TrimSpace(md) == "" {
		return []string{""}
	}

	k := cacheKey(md, w)
	r.mu.Lock()
	cached, ok := r.cache[k]
	r.mu.Unlock()
	if ok {
		return cached
	}

	lines, err := r.render(md, w)
	if err != nil {
		log.Warn("markdown: rendering failed, showing plain text: %v", err)
		return width.WrapWords(md, w)
	}

	r.mu.Lock()
	r.cache[k] = lines
	r.mu.Unlock()
	return lines
}

func (r *MarkdownRenderer) render(md string, w int) ([]string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	out = strings.Trim(width.StripANSI(out), "\n")
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	// Glamour indents the document; the rendered width may still exceed w
	// by its margin, so hard-wrap anything that does.
	var fitted []string
	for _, l := range lines {
		if width.VisibleWidth(l) <= w {
			fitted = append(fitted, l)
			continue
		}
		fitted = append(fitted, width.WrapWords(l, w)...)
	}
	return fitted, nil
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, w int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], w)
}
