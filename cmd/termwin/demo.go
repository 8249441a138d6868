// ABOUTME: "demo" subcommand: a menu that opens help, markdown and nested sample windows
// ABOUTME: Exercises auto sizing, relative geometry, scrolling and stacked child windows

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termwindows/internal/keybindings"
	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/component"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

const aboutMarkdown = `# termwin

Windows are stacked. Only the **top** window gets keys; closing it
reveals the one below.

## Sizing

- *auto* sizes follow the content, capped by the screen
- absolute sizes are cell counts
- relative sizes are fractions of the screen

Resize the terminal to see every window lay itself out again.
`

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive menu of sample windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), a.demoMenu)
		},
	}
}

// demoWindow is the demo's main menu. '?' opens the help window from
// anywhere, so it never reaches the filter.
type demoWindow struct {
	*component.Menu
	help func() window.Window
}

func (w *demoWindow) HandleInput(k key.Key) {
	if k.Is(key.Rune('?')) {
		if err := w.Open(w.help()); err != nil {
			log.Warn("demo: opening help: %v", err)
		}
		return
	}
	w.Menu.HandleInput(k)
}

func (a *app) demoMenu(d window.Display) (window.Window, error) {
	m, err := component.NewMenu(d, []component.MenuItem{
		{Label: "Help", Description: "key reference", Action: a.open(a.helpWindow)},
		{Label: "About", Description: "markdown page", Action: a.open(a.aboutWindow)},
		{Label: "Samples", Description: "geometry examples", Action: a.open(a.samplesMenu)},
		{Label: "Quit", Description: "close this menu"},
	}, a.windowOptions(window.WithTitle("termwin"))...)
	if err != nil {
		return nil, err
	}
	w := &demoWindow{Menu: m}
	w.help = func() window.Window {
		h, err := a.helpWindow(m.Display())
		if err != nil {
			log.Warn("demo: building help: %v", err)
			return nil
		}
		return h
	}
	return w, nil
}

// open adapts a window constructor into a menu action. Build errors are
// logged and leave the menu in place.
func (a *app) open(build builder) func(*component.Menu) window.Window {
	return func(m *component.Menu) window.Window {
		w, err := build(m.Display())
		if err != nil {
			log.Warn("demo: %v", err)
			return nil
		}
		return w
	}
}

func (a *app) helpText() string {
	cancel := key.Name(a.settings.Key())
	rows := [][2]string{
		{"letters", "filter the menu"},
		{"backspace", "edit the filter"},
		{cancel, "clear the filter, then close"},
		{"?", "show this help"},
		{"ctrl+c", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-10s %s\n", r[0], r[1])
	}
	b.WriteString("\nNavigation:\n")
	b.WriteString(strings.TrimRight(keybindings.Current().FormatAll(), "\n"))
	return b.String()
}

func (a *app) helpWindow(d window.Display) (window.Window, error) {
	t, err := component.NewText(d, a.helpText(), a.windowOptions(window.WithTitle("Help"))...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (a *app) aboutWindow(d window.Display) (window.Window, error) {
	m, err := component.NewMarkdown(d, aboutMarkdown, a.markdown(), a.windowOptions(window.WithTitle("About"))...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (a *app) samplesMenu(d window.Display) (window.Window, error) {
	m, err := component.NewMenu(d, []component.MenuItem{
		{Label: "Long text", Description: "scrolls", Action: a.open(a.longText)},
		{Label: "Half screen", Description: "50% x 50%", Action: a.open(a.halfScreen)},
		{Label: "Corner", Description: "absolute 30x8 at 2,1", Action: a.open(a.corner)},
		{Label: "Samples", Description: "one more level", Action: a.open(a.samplesMenu)},
		{Label: "Back"},
	}, a.windowOptions(window.WithTitle("Samples"))...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (a *app) longText(d window.Display) (window.Window, error) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = fmt.Sprintf("%3d  the window scrolls when its text is taller than the screen allows", i+1)
	}
	t, err := component.NewText(d, strings.Join(lines, "\n"), a.windowOptions(window.WithTitle("Long text"))...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (a *app) halfScreen(d window.Display) (window.Window, error) {
	t, err := component.NewText(d, "This window takes half of the screen in each direction and stays centered.",
		a.windowOptions(
			window.WithTitle("Half screen"),
			window.WithSize(layout.Rel(0.5), layout.Rel(0.5)),
		)...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (a *app) corner(d window.Display) (window.Window, error) {
	t, err := component.NewText(d, "Fixed size and position.",
		a.windowOptions(
			window.WithTitle("Corner"),
			window.WithSize(layout.Abs(30), layout.Abs(8)),
			window.WithPosition(layout.Abs(2), layout.Abs(1)),
		)...)
	if err != nil {
		return nil, err
	}
	return t, nil
}
