// ABOUTME: Window is the hook set the controller drives; Base supplies the default hooks.
// ABOUTME: Base owns geometry, lifecycle flags, and the border/status-bar painting step.

package window

import (
	"fmt"
	"strings"

	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/width"
)

// Window is a stackable region. Variants embed *Base and override the
// hooks they need; an override that wants the default behavior calls the
// embedded Base method explicitly.
type Window interface {
	// State exposes the embedded Base to the controller.
	State() *Base
	// Draw paints the window. Variants call Base.Draw first, then paint
	// only inside Content.
	Draw()
	// HandleInput receives keys while the window is on top.
	HandleInput(k key.Key)
	// HandleResize recomputes geometry after the display was (re)bound.
	HandleResize()
	// Tick runs once per controller iteration while the window is on top.
	Tick()
}

var _ Window = (*Base)(nil)

// Base is the default window: a bordered frame with a title and status
// bar that closes on the cancel key.
type Base struct {
	title     string
	statusBar string
	border    bool
	cancel    key.Key
	spec      layout.Spec
	resolver  layout.Resolver
	theme     *theme.Theme
	natural   *layout.Size

	display   Display
	container layout.Rect
	frame     layout.Rect
	content   layout.Rect

	scrollPos float64
	scrolling bool

	closed bool
	redraw bool
	child  Window
}

// NewBase creates a window bound to display and resolves its geometry
// against the display's current size. Invalid specifications are
// rejected here rather than clamped later. A nil display leaves the
// geometry empty until the window is pushed.
func NewBase(display Display, opts ...Option) (*Base, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.spec.Validate(); err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	b := &Base{
		title:     o.title,
		statusBar: o.statusBar,
		border:    o.border,
		cancel:    o.cancel,
		spec:      o.spec,
		resolver:  o.resolver,
		theme:     o.theme,
		redraw:    true,
	}
	b.SetDisplay(display)
	b.resolve()
	return b, nil
}

// State returns b.
func (b *Base) State() *Base { return b }

// Draw paints the border, title, status bar and scroll indicator into the
// frame. Content is left untouched. Windows without a border draw nothing.
func (b *Base) Draw() {
	if b.display == nil || !b.border {
		return
	}
	drawFrame(b.display, b.frame, b.frameStyle())
}

// HandleInput closes the window on the cancel key.
func (b *Base) HandleInput(k key.Key) {
	if k.Is(b.cancel) {
		b.Close()
	}
}

// HandleResize takes the bound display's size as the new container and
// re-resolves frame and content.
func (b *Base) HandleResize() {
	b.resolve()
}

// Tick does nothing by default.
func (b *Base) Tick() {}

// SetDisplay binds the window to d and adopts its size as the container.
// The controller calls it on push and on every resize, followed by HandleResize.
func (b *Base) SetDisplay(d Display) {
	b.display = d
	b.container = layout.Rect{}
	if d != nil {
		w, h := d.Size()
		b.container = layout.Rect{Width: max(0, w), Height: max(0, h)}
	}
}

// Display returns the bound display, or nil.
func (b *Base) Display() Display { return b.display }

func (b *Base) resolve() {
	b.frame = b.resolver.Resolve(b.spec, b.container, b.natural)
	if b.border {
		b.content = b.frame.Inset(1)
	} else {
		b.content = b.frame
	}
}

// Frame returns the full bordered extent.
func (b *Base) Frame() layout.Rect { return b.frame }

// Content returns the drawable area inside the border.
func (b *Base) Content() layout.Rect { return b.content }

// Container returns the rectangle geometry is resolved against.
func (b *Base) Container() layout.Rect { return b.container }

// Spec returns the geometry specification.
func (b *Base) Spec() layout.Spec { return b.spec }

// SetSpec validates and installs a new specification, then re-resolves.
func (b *Base) SetSpec(spec layout.Spec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("setting window spec: %w", err)
	}
	b.spec = spec
	b.resolve()
	b.redraw = true
	return nil
}

// SetNaturalSize sets the content-driven size used by Auto width and
// height, or clears it with nil, and re-resolves immediately.
func (b *Base) SetNaturalSize(sz *layout.Size) {
	if sz != nil {
		cp := *sz
		sz = &cp
	}
	b.natural = sz
	b.resolve()
}

// Resolver returns the resolver used for this window's geometry.
func (b *Base) Resolver() layout.Resolver { return b.resolver }

// Title returns the border title.
func (b *Base) Title() string { return b.title }

// SetTitle changes the border title and requests a redraw.
func (b *Base) SetTitle(s string) {
	if s != b.title {
		b.title = s
		b.redraw = true
	}
}

// StatusBar returns the bottom border text.
func (b *Base) StatusBar() string { return b.statusBar }

// SetStatusBar changes the bottom border text and requests a redraw.
func (b *Base) SetStatusBar(s string) {
	if s != b.statusBar {
		b.statusBar = s
		b.redraw = true
	}
}

// HasBorder reports whether the window draws a border.
func (b *Base) HasBorder() bool { return b.border }

// CancelKey returns the key that closes the window.
func (b *Base) CancelKey() key.Key { return b.cancel }

// Theme returns the pinned theme or the current global one.
func (b *Base) Theme() *theme.Theme {
	if b.theme != nil {
		return b.theme
	}
	return theme.Current()
}

// SetScroll shows the scroll indicator with the thumb at pos, clamped to [0, 1].
func (b *Base) SetScroll(pos float64) {
	pos = min(1, max(0, pos))
	if !b.scrolling || pos != b.scrollPos {
		b.scrolling = true
		b.scrollPos = pos
		b.redraw = true
	}
}

// ClearScroll hides the scroll indicator.
func (b *Base) ClearScroll() {
	if b.scrolling {
		b.scrolling = false
		b.redraw = true
	}
}

// Scroll returns the indicator position and whether it is shown.
func (b *Base) Scroll() (pos float64, shown bool) { return b.scrollPos, b.scrolling }

// Close marks the window for removal. Closing twice is harmless.
func (b *Base) Close() { b.closed = true }

// Closed reports whether Close was called.
func (b *Base) Closed() bool { return b.closed }

// Open asks the controller to push child on top of this window. Only one
// child may be pending; a second Open before the first is consumed fails
// with ErrChildPending.
func (b *Base) Open(child Window) error {
	switch {
	case child == nil || child.State() == nil:
		return ErrNilWindow
	case child.State() == b:
		return ErrCycle
	case b.child != nil:
		return ErrChildPending
	}
	b.child = child
	return nil
}

// Child returns the pending child, or nil.
func (b *Base) Child() Window { return b.child }

func (b *Base) clearChild() { b.child = nil }

// Invalidate requests a redraw on the next controller iteration.
func (b *Base) Invalidate() { b.redraw = true }

// NeedsRedraw reports whether a redraw was requested.
func (b *Base) NeedsRedraw() bool { return b.redraw }

func (b *Base) clearRedraw() { b.redraw = false }

// PrintContent writes text at (row, col) relative to the content origin,
// clipped to the content rectangle.
func (b *Base) PrintContent(row, col int, text string, st theme.Style) {
	c := b.content
	if b.display == nil || row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return
	}
	b.display.PrintAt(c.Y+row, c.X+col, width.Cut(text, c.Width-col), st)
}

// ClearContent fills the content rectangle with spaces in the text style.
func (b *Base) ClearContent() {
	if b.display == nil || b.content.Empty() {
		return
	}
	blank := strings.Repeat(" ", b.content.Width)
	st := b.Theme().Palette.Text
	for row := range b.content.Height {
		b.display.PrintAt(b.content.Y+row, b.content.X, blank, st)
	}
}

func (b *Base) frameStyle() frameStyle {
	th := b.Theme()
	return frameStyle{
		glyphs:    th.Border,
		palette:   th.Palette,
		title:     b.title,
		status:    b.statusBar,
		scrolling: b.scrolling,
		scrollPos: b.scrollPos,
	}
}
