// ABOUTME: Sentinel errors for window lifecycle and controller misuse.
// ABOUTME: Callers match them with errors.Is.

package window

import "errors"

var (
	// ErrEmptyStack is returned by Run when no window was pushed.
	ErrEmptyStack = errors.New("window: run called with no windows")
	// ErrChildPending is returned by Open while an earlier child has not been consumed.
	ErrChildPending = errors.New("window: child already pending")
	// ErrNilWindow is returned when a nil window is opened or pushed.
	ErrNilWindow = errors.New("window: nil window")
	// ErrCycle is returned when a window is opened as its own child.
	ErrCycle = errors.New("window: window cannot be its own child")
)
