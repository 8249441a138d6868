// ABOUTME: Presets the lipgloss dark background so Bubble Tea never queries the terminal colors
// ABOUTME: Imported blank by the termwin CLI ahead of any package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background the sync.Once in lipgloss that sends
	// OSC 10/11 never fires, so no reply bytes reach the key reader.
	// This package must not import bubbletea, directly or transitively,
	// so that its init runs first.
	lipgloss.SetHasDarkBackground(true)
}
