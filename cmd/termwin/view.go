// ABOUTME: "view" subcommand: shows a plain-text or markdown file in an auto-sized window
// ABOUTME: Geometry flags accept the layout forms: auto, cell counts and percentages

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termwindows/pkg/tui/component"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

type viewFlags struct {
	markdown bool
	plain    bool
	title    string
	width    string
	height   string
	noBorder bool
}

func newViewCmd(a *app) *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Show a text or markdown file in a scrollable window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := a.viewBuilder(args[0], f)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), build)
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&f.markdown, "markdown", false, "Render as markdown regardless of extension")
	fl.BoolVar(&f.plain, "plain", false, "Show as plain text regardless of extension")
	fl.StringVar(&f.title, "title", "", "Window title (default: file name)")
	fl.StringVar(&f.width, "width", "auto", "Window width: auto, cells or percent")
	fl.StringVar(&f.height, "height", "auto", "Window height: auto, cells or percent")
	fl.BoolVar(&f.noBorder, "no-border", false, "Draw without a border")
	cmd.MarkFlagsMutuallyExclusive("markdown", "plain")
	return cmd
}

// isMarkdown reports whether path names a markdown file.
func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// viewBuilder reads path and returns a builder for its window. Errors in
// the file or the geometry flags surface before the terminal is touched.
func (a *app) viewBuilder(path string, f viewFlags) (builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	w, err := layout.ParseDim(f.width)
	if err != nil {
		return nil, fmt.Errorf("--width: %w", err)
	}
	h, err := layout.ParseDim(f.height)
	if err != nil {
		return nil, fmt.Errorf("--height: %w", err)
	}

	title := f.title
	if title == "" {
		title = filepath.Base(path)
	}
	opts := a.windowOptions(
		window.WithTitle(title),
		window.WithSize(w, h),
		window.WithBorder(!f.noBorder),
	)
	md := f.markdown || (!f.plain && isMarkdown(path))
	src := string(data)

	return func(d window.Display) (window.Window, error) {
		if md {
			m, err := component.NewMarkdown(d, src, a.markdown(), opts...)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
		t, err := component.NewText(d, src, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	}, nil
}

// windowOptions prefixes extra with the options every window takes from
// the settings.
func (a *app) windowOptions(extra ...window.Option) []window.Option {
	opts := []window.Option{
		window.WithCancelKey(a.settings.Key()),
		window.WithResolver(a.settings.Resolver()),
	}
	return append(opts, extra...)
}

func (a *app) markdown() *component.MarkdownRenderer {
	if a.renderer == nil {
		a.renderer = component.NewMarkdownRenderer(a.settings.MarkdownStyle)
	}
	return a.renderer
}
