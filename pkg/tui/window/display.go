// ABOUTME: Display and Terminal are the capabilities windows and the controller consume.
// ABOUTME: Hosts (ANSI, tcell, bubbletea) implement them; the core never touches a TTY.

package window

import (
	"context"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
)

// Display is the drawing surface a window is bound to.
type Display interface {
	// Size returns the current width and height in cells.
	Size() (width, height int)
	// PrintAt writes text at the zero-based (row, col) cell in style st.
	// Text falling outside the display is clipped.
	PrintAt(row, col int, text string, st theme.Style)
}

// Terminal is the full capability set the controller drives.
type Terminal interface {
	Display

	// Flush makes everything printed since the last flush visible.
	Flush() error
	// Refresh re-reads the terminal size and clears the screen.
	Refresh() error
	// NextKey waits up to timeout for one key. ok is false when the
	// wait elapsed with no input.
	NextKey(ctx context.Context, timeout time.Duration) (k key.Key, ok bool, err error)
	// Acquire enters fullscreen raw mode with a hidden cursor. The
	// returned release restores the terminal and must always be called.
	Acquire() (release func() error, err error)
}
