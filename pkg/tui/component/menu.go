// ABOUTME: Menu is a selectable item list window with type-to-filter fuzzy matching.
// ABOUTME: Enter runs the selected item's action, which may open a child window.

package component

import (
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/termwindows/internal/keybindings"
	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/width"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

// MenuStatusBar is the default bottom border text of a menu.
const MenuStatusBar = "[Enter=Select, Esc=Close]"

var _ window.Window = (*Menu)(nil)

// MenuItem is one entry. Action runs on Enter; a non-nil result is opened
// as a child of the menu. Items without an action close the menu.
type MenuItem struct {
	Label       string
	Description string
	Action      func(m *Menu) window.Window
}

// labels adapts the item list to fuzzy.Source.
type labels []MenuItem

func (l labels) String(i int) string { return l[i].Label }
func (l labels) Len() int            { return len(l) }

// Menu lists items. Typing filters them; Backspace edits the filter and
// Escape clears a non-empty filter before it closes the menu.
type Menu struct {
	*window.Base

	items     []MenuItem
	visible   []int
	selected  int
	scrollOff int
	filter    []rune
	hint      string
}

// NewMenu creates a menu over d. The status bar defaults to MenuStatusBar.
func NewMenu(d window.Display, items []MenuItem, opts ...window.Option) (*Menu, error) {
	opts = append([]window.Option{window.WithStatusBar(MenuStatusBar)}, opts...)
	b, err := window.NewBase(d, opts...)
	if err != nil {
		return nil, err
	}
	m := &Menu{Base: b, items: items, hint: b.StatusBar()}
	m.applyFilter()
	m.HandleResize()
	return m, nil
}

// Filter returns the current filter text.
func (m *Menu) Filter() string { return string(m.filter) }

// SetFilter replaces the filter and resets the selection.
func (m *Menu) SetFilter(f string) {
	m.filter = []rune(f)
	m.applyFilter()
}

// VisibleItems returns the items matching the filter, best match first.
func (m *Menu) VisibleItems() []MenuItem {
	out := make([]MenuItem, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.items[idx]
	}
	return out
}

// SelectedIndex returns the selection within VisibleItems.
func (m *Menu) SelectedIndex() int { return m.selected }

// SelectedItem returns the selected item, or false when nothing matches.
func (m *Menu) SelectedItem() (MenuItem, bool) {
	if len(m.visible) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.visible[m.selected]], true
}

func (m *Menu) applyFilter() {
	m.selected = 0
	m.scrollOff = 0
	m.visible = m.visible[:0]
	if len(m.filter) == 0 {
		for i := range m.items {
			m.visible = append(m.visible, i)
		}
	} else {
		for _, match := range fuzzy.FindFrom(string(m.filter), labels(m.items)) {
			m.visible = append(m.visible, match.Index)
		}
	}

	if len(m.filter) == 0 {
		m.SetStatusBar(m.hint)
	} else {
		m.SetStatusBar("/" + string(m.filter))
	}
	m.updateScroll()
	m.Invalidate()
}

// HandleResize sizes the menu to its longest entry and item count.
func (m *Menu) HandleResize() {
	m.Base.HandleResize()

	cont := m.Container()
	r := m.Resolver()
	chrome := 0
	if m.HasBorder() {
		chrome = 2
	}
	longest := width.VisibleWidth(m.hint)
	for _, it := range m.items {
		longest = max(longest, width.VisibleWidth(m.itemText(it)))
	}
	m.SetNaturalSize(&layout.Size{
		Width:  max(MinTextWidth, min(r.Limit(cont.Width), longest+chrome+2)),
		Height: max(MinTextHeight, min(r.Limit(cont.Height), len(m.items)+chrome)),
	})
	m.adjustScroll()
	m.Invalidate()
}

func (m *Menu) itemText(it MenuItem) string {
	if it.Description == "" {
		return it.Label
	}
	return it.Label + "  " + it.Description
}

// Draw paints the frame and the visible slice of items.
func (m *Menu) Draw() {
	m.Base.Draw()

	c := m.Content()
	if c.Empty() {
		return
	}
	p := m.Theme().Palette
	for row := range c.Height {
		line := ""
		st := p.Text
		if i := m.scrollOff + row; i < len(m.visible) {
			line = " " + m.itemText(m.items[m.visible[i]])
			if i == m.selected {
				st = p.Selection
			}
		}
		m.PrintContent(row, 0, width.Fit(width.TruncateToWidth(line, c.Width), c.Width), st)
	}
}

// HandleInput navigates and activates through the key bindings. Unbound
// runes extend the filter.
func (m *Menu) HandleInput(k key.Key) {
	page := max(1, m.Content().Height)
	switch a := keybindings.Current().ActionForKey(k); {
	case a == keybindings.ActionUp:
		m.moveTo(m.selected - 1)
	case a == keybindings.ActionDown:
		m.moveTo(m.selected + 1)
	case a == keybindings.ActionPageUp:
		m.moveTo(m.selected - page)
	case a == keybindings.ActionPageDown:
		m.moveTo(m.selected + page)
	case a == keybindings.ActionHome:
		m.moveTo(0)
	case a == keybindings.ActionEnd:
		m.moveTo(len(m.visible) - 1)
	case a == keybindings.ActionSelect:
		m.activate()
	case k.Type == key.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case k.Is(m.CancelKey()) && len(m.filter) > 0:
		m.SetFilter("")
	case k.Type == key.KeyRune && !k.Alt && !k.Is(m.CancelKey()):
		m.filter = append(m.filter, k.Rune)
		m.applyFilter()
	default:
		m.Base.HandleInput(k)
	}
}

func (m *Menu) moveTo(i int) {
	i = max(0, min(len(m.visible)-1, i))
	if i == m.selected || i < 0 {
		return
	}
	m.selected = i
	m.adjustScroll()
	m.Invalidate()
}

func (m *Menu) adjustScroll() {
	h := max(1, m.Content().Height)
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+h {
		m.scrollOff = m.selected - h + 1
	}
	m.scrollOff = max(0, min(m.scrollOff, len(m.visible)-h))
	m.updateScroll()
}

func (m *Menu) updateScroll() {
	h := m.Content().Height
	if len(m.visible) <= h || len(m.visible) < 2 {
		m.ClearScroll()
		return
	}
	m.SetScroll(float64(m.selected) / float64(len(m.visible)-1))
}

func (m *Menu) activate() {
	it, ok := m.SelectedItem()
	if !ok {
		return
	}
	if it.Action == nil {
		m.Close()
		return
	}
	child := it.Action(m)
	if child == nil {
		return
	}
	if err := m.Open(child); err != nil {
		log.Warn("menu: opening %q: %v", it.Label, err)
	}
}
