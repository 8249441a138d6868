// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Windows does not deliver SIGWINCH; hosts fall back to size polling.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
func (t *ProcessTerminal) startResizeListener() func() {
	return func() {}
}
