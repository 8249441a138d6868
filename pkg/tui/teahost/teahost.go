// ABOUTME: Bubble Tea host: a tea.Model that drives a window.Controller one Step per message.
// ABOUTME: Windows draw into a canvas that View renders; bubbletea owns the terminal.

package teahost

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termwindows/pkg/tui/canvas"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

// DefaultTickInterval paces Step calls when no input arrives.
const DefaultTickInterval = 100 * time.Millisecond

var (
	_ window.Terminal = (*Term)(nil)
	_ tea.Model       = Model{}
)

// Term is the window.Terminal handed to the controller. Keys are queued
// by Model.Update and consumed without waiting.
type Term struct {
	*canvas.Canvas
	pending []key.Key
}

// NewTerm returns a Term of the given initial size. The first
// WindowSizeMsg replaces it.
func NewTerm(w, h int) *Term {
	return &Term{Canvas: canvas.New(w, h)}
}

// Flush is a no-op; View renders the canvas.
func (t *Term) Flush() error { return nil }

// Refresh blanks the canvas. Its size is set from WindowSizeMsg.
func (t *Term) Refresh() error {
	t.Clear()
	return nil
}

// NextKey pops a queued key without blocking.
func (t *Term) NextKey(ctx context.Context, _ time.Duration) (key.Key, bool, error) {
	if err := ctx.Err(); err != nil {
		return key.Key{}, false, err
	}
	if len(t.pending) == 0 {
		return key.Key{}, false, nil
	}
	k := t.pending[0]
	t.pending = t.pending[1:]
	return k, true, nil
}

// Acquire is a no-op; the tea.Program enters the alternate screen.
func (t *Term) Acquire() (func() error, error) {
	return func() error { return nil }, nil
}

type tickMsg time.Time

// Model adapts a controller to the Bubble Tea update loop.
// Value copies share the controller and terminal.
type Model struct {
	ctrl     *window.Controller
	term     *Term
	interval time.Duration
	err      error
}

// NewModel wraps ctrl, which must have been created over term.
func NewModel(ctrl *window.Controller, term *Term, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return Model{ctrl: ctrl, term: term, interval: interval}
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error { return m.err }

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update feeds keys, ticks and resizes to the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k, ok := Key(msg)
		if !ok {
			return m, nil
		}
		m.term.pending = append(m.term.pending, k)
	case tea.WindowSizeMsg:
		m.term.Resize(msg.Width, msg.Height)
		m.ctrl.NotifyResize()
	case tickMsg:
		next = m.tick()
	default:
		return m, nil
	}

	done, err := m.ctrl.Step(context.Background())
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if done {
		return m, tea.Quit
	}
	return m, next
}

// View renders the canvas.
func (m Model) View() string {
	return m.term.Render()
}

// Run starts a full-screen tea.Program over m and blocks until the
// stack empties or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Key translates a Bubble Tea key message. ok is false for keys windows
// do not handle.
func Key(msg tea.KeyMsg) (key.Key, bool) {
	var k key.Key
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return key.Key{}, false
		}
		k = key.Rune(msg.Runes[0])
	case tea.KeySpace:
		k = key.Rune(' ')
	case tea.KeyEnter:
		k = key.Named(key.KeyEnter)
	case tea.KeyTab:
		k = key.Named(key.KeyTab)
	case tea.KeyShiftTab:
		k = key.Named(key.KeyBackTab)
	case tea.KeyBackspace, tea.KeyCtrlH:
		k = key.Named(key.KeyBackspace)
	case tea.KeyEsc:
		k = key.Named(key.KeyEscape)
	case tea.KeyDelete:
		k = key.Named(key.KeyDelete)
	case tea.KeyInsert:
		k = key.Named(key.KeyInsert)
	case tea.KeyUp:
		k = key.Named(key.KeyUp)
	case tea.KeyDown:
		k = key.Named(key.KeyDown)
	case tea.KeyLeft:
		k = key.Named(key.KeyLeft)
	case tea.KeyRight:
		k = key.Named(key.KeyRight)
	case tea.KeyHome:
		k = key.Named(key.KeyHome)
	case tea.KeyEnd:
		k = key.Named(key.KeyEnd)
	case tea.KeyPgUp:
		k = key.Named(key.KeyPageUp)
	case tea.KeyPgDown:
		k = key.Named(key.KeyPageDown)
	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			k = key.Ctrl(rune('a' + msg.Type - tea.KeyCtrlA))
			break
		}
		return key.Key{}, false
	}
	k.Alt = msg.Alt
	return k, true
}
