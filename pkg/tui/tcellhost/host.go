// ABOUTME: Host adapts a tcell.Screen to window.Terminal: cells, styles, keys and resize events.
// ABOUTME: Events are pumped from PollEvent into a channel while the screen is acquired.

package tcellhost

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/width"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

var _ window.Terminal = (*Host)(nil)

// ErrNotAcquired is returned by NextKey before Acquire or after release.
var ErrNotAcquired = errors.New("tcell screen not acquired")

const eventQueueSize = 100

// Host draws windows on a tcell screen.
type Host struct {
	screen tcell.Screen

	mu       sync.Mutex
	width    int
	height   int
	events   chan tcell.Event
	quit     chan struct{}
	onResize func()
}

// Option configures a Host.
type Option func(*Host)

// WithScreen uses s instead of the process terminal. Tests pass a
// simulation screen here.
func WithScreen(s tcell.Screen) Option {
	return func(h *Host) { h.screen = s }
}

// New returns a Host. Without WithScreen it opens the controlling terminal.
func New(opts ...Option) (*Host, error) {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}
	if h.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("creating tcell screen: %w", err)
		}
		h.screen = s
	}
	return h, nil
}

// Screen exposes the underlying tcell screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Watch registers fn to run when tcell reports a resize.
func (h *Host) Watch(fn func()) {
	h.mu.Lock()
	h.onResize = fn
	h.mu.Unlock()
}

// Acquire initialises the screen and starts the event pump.
func (h *Host) Acquire() (func() error, error) {
	if err := h.screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising tcell screen: %w", err)
	}
	h.screen.HideCursor()
	h.screen.Clear()

	events := make(chan tcell.Event, eventQueueSize)
	quit := make(chan struct{})
	h.mu.Lock()
	h.events, h.quit = events, quit
	h.mu.Unlock()
	h.readSize()

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	return func() error {
		once.Do(func() {
			h.mu.Lock()
			h.events = nil
			h.mu.Unlock()
			close(quit)
			h.screen.Fini()
		})
		return nil
	}, nil
}

// Size returns the screen size in cells as of the last Acquire or Refresh.
func (h *Host) Size() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

func (h *Host) readSize() {
	w, ht := h.screen.Size()
	h.mu.Lock()
	h.width, h.height = w, ht
	h.mu.Unlock()
}

// PrintAt places text starting at (row, col), one grapheme cluster per cell.
func (h *Host) PrintAt(row, col int, text string, st theme.Style) {
	w, ht := h.screen.Size()
	if row < 0 || row >= ht {
		return
	}
	style := Style(st)
	x := col
	for _, c := range width.Cells(text) {
		if x >= w || x+c.Width > w {
			return
		}
		if x >= 0 {
			runes := []rune(c.Text)
			h.screen.SetContent(x, row, runes[0], runes[1:], style)
		}
		x += c.Width
	}
}

// Flush shows pending changes.
func (h *Host) Flush() error {
	h.screen.Show()
	return nil
}

// Refresh clears the screen and adopts tcell's current size.
func (h *Host) Refresh() error {
	h.screen.Clear()
	h.screen.Sync()
	h.readSize()
	return nil
}

// NextKey waits up to timeout for a key event. Resize events run the
// Watch callback and keep waiting.
func (h *Host) NextKey(ctx context.Context, timeout time.Duration) (key.Key, bool, error) {
	h.mu.Lock()
	events := h.events
	h.mu.Unlock()
	if events == nil {
		return key.Key{}, false, ErrNotAcquired
	}

	if timeout <= 0 {
		timeout = time.Nanosecond
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return key.Key{}, false, ctx.Err()
		case <-timer.C:
			return key.Key{}, false, nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k, ok := Key(ev); ok {
					return k, true, nil
				}
			case *tcell.EventResize:
				h.mu.Lock()
				fn := h.onResize
				h.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}
	}
}

// Key translates a tcell key event. ok is false for keys windows do not handle.
func Key(ev *tcell.EventKey) (key.Key, bool) {
	alt := ev.Modifiers()&tcell.ModAlt != 0

	var k key.Key
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			k = key.Ctrl(r)
			break
		}
		k = key.Rune(r)
	case tcell.KeyEnter, tcell.KeyLF:
		k = key.Named(key.KeyEnter)
	case tcell.KeyTab:
		k = key.Named(key.KeyTab)
	case tcell.KeyBacktab:
		k = key.Named(key.KeyBackTab)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k = key.Named(key.KeyBackspace)
	case tcell.KeyEscape:
		k = key.Named(key.KeyEscape)
	case tcell.KeyDelete:
		k = key.Named(key.KeyDelete)
	case tcell.KeyInsert:
		k = key.Named(key.KeyInsert)
	case tcell.KeyUp:
		k = key.Named(key.KeyUp)
	case tcell.KeyDown:
		k = key.Named(key.KeyDown)
	case tcell.KeyLeft:
		k = key.Named(key.KeyLeft)
	case tcell.KeyRight:
		k = key.Named(key.KeyRight)
	case tcell.KeyHome:
		k = key.Named(key.KeyHome)
	case tcell.KeyEnd:
		k = key.Named(key.KeyEnd)
	case tcell.KeyPgUp:
		k = key.Named(key.KeyPageUp)
	case tcell.KeyPgDn:
		k = key.Named(key.KeyPageDown)
	default:
		// Tab, Enter and Backspace share codes with Ctrl+I, Ctrl+M and
		// Ctrl+H and are matched above.
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			k = key.Ctrl(rune('a' + ev.Key() - tcell.KeyCtrlA))
			break
		}
		return key.Key{}, false
	}
	k.Alt = alt
	return k, true
}

// Style converts a theme style. Numeric colors index the 256-color
// palette; anything else goes through tcell's name and hex lookup.
func Style(st theme.Style) tcell.Style {
	s := tcell.StyleDefault
	if st.Fg != "" {
		s = s.Foreground(color(st.Fg))
	}
	if st.Bg != "" {
		s = s.Background(color(st.Bg))
	}
	return s.Bold(st.Bold).Dim(st.Dim).Reverse(st.Reverse)
}

func color(c string) tcell.Color {
	if n, err := strconv.Atoi(c); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(c)
}
