// ABOUTME: Screen is the ANSI host: cursor-addressed output buffered per frame over a terminal.Terminal.
// ABOUTME: Frames are written in one synchronized-output burst; keys come from an input.Reader.

package screen

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/input"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/terminal"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/width"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

var _ window.Terminal = (*Screen)(nil)

// Screen draws windows with ANSI escape sequences.
type Screen struct {
	term  terminal.Terminal
	keys  *input.Reader
	synch bool

	mu     sync.Mutex
	buf    bytes.Buffer
	width  int
	height int
}

// Option configures a Screen.
type Option func(*Screen)

// WithSynchronizedOutput toggles CSI 2026 framing around each flush.
// Terminals that do not know the mode ignore it.
func WithSynchronizedOutput(on bool) Option {
	return func(s *Screen) { s.synch = on }
}

// New returns a Screen over t. Call Start to begin decoding input.
func New(t terminal.Terminal, opts ...Option) (*Screen, error) {
	s := &Screen{
		term:  t,
		keys:  input.NewReader(t),
		synch: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.readSize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start pumps terminal input into the key queue until ctx ends or the
// input closes. It blocks; run it alongside the controller.
func (s *Screen) Start(ctx context.Context) {
	s.keys.Start(ctx)
}

// Watch calls fn whenever the terminal reports a resize. fn runs on the
// signal goroutine and should only record the event.
func (s *Screen) Watch(fn func()) {
	s.term.OnResize(func(int, int) { fn() })
}

func (s *Screen) readSize() error {
	w, h, err := s.term.Size()
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	s.mu.Lock()
	s.width, s.height = w, h
	s.mu.Unlock()
	return nil
}

// Size returns the size captured at construction or the last Refresh.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// PrintAt queues text at (row, col). Text is clipped to the screen.
func (s *Screen) PrintAt(row, col int, text string, st theme.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= s.height || col >= s.width || text == "" {
		return
	}
	if col < 0 {
		text = dropColumns(text, -col)
		col = 0
	}
	text = width.Cut(text, s.width-col)
	if text == "" {
		return
	}

	s.buf.WriteString("\x1b[")
	s.buf.WriteString(strconv.Itoa(row + 1))
	s.buf.WriteByte(';')
	s.buf.WriteString(strconv.Itoa(col + 1))
	s.buf.WriteByte('H')
	if st.IsZero() {
		s.buf.WriteString(text)
		return
	}
	s.buf.WriteString(st.Render(text))
	s.buf.WriteString(terminal.ResetStyle)
}

// dropColumns removes the first n columns of text.
func dropColumns(text string, n int) string {
	var b bytes.Buffer
	col := 0
	for _, c := range width.Cells(text) {
		if col >= n {
			b.WriteString(c.Text)
		}
		col += c.Width
	}
	return b.String()
}

// Flush writes the queued frame in one burst.
func (s *Screen) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf.Len() == 0 {
		return nil
	}
	var out bytes.Buffer
	if s.synch {
		out.WriteString(terminal.SyncBegin)
	}
	out.Write(s.buf.Bytes())
	if s.synch {
		out.WriteString(terminal.SyncEnd)
	}
	s.buf.Reset()

	if _, err := s.term.Write(out.Bytes()); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

// Refresh re-reads the size and queues a screen clear ahead of the next frame.
func (s *Screen) Refresh() error {
	if err := s.readSize(); err != nil {
		return err
	}
	s.mu.Lock()
	s.buf.Reset()
	s.buf.WriteString(terminal.ResetStyle + terminal.ClearScreen)
	s.mu.Unlock()
	return nil
}

// NextKey waits up to timeout for a key.
func (s *Screen) NextKey(ctx context.Context, timeout time.Duration) (key.Key, bool, error) {
	return s.keys.Next(ctx, timeout)
}

// Acquire enters raw mode and the alternate screen with the cursor hidden.
func (s *Screen) Acquire() (func() error, error) {
	if err := s.term.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}
	if _, err := s.term.Write([]byte(terminal.EnterAltScreen + terminal.HideCursor + terminal.ClearScreen)); err != nil {
		_ = s.term.ExitRawMode()
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			if _, werr := s.term.Write([]byte(terminal.ResetStyle + terminal.ShowCursor + terminal.ExitAltScreen)); werr != nil {
				err = fmt.Errorf("releasing terminal: %w", werr)
			}
			if rerr := s.term.ExitRawMode(); rerr != nil && err == nil {
				err = rerr
			}
		})
		return err
	}, nil
}
