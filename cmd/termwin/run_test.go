// ABOUTME: Tests for the host runner pieces: Ctrl+C interception and view window building
// ABOUTME: No real terminal is opened; windows are built against a canvas

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/component"
	"github.com/mauromedda/termwindows/pkg/tui/key"
)

func TestInterruptTerm(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	it := &interruptTerm{
		Terminal: newScriptTerm(10, 5, key.Rune('a'), key.Ctrl('c')),
		cancel:   cancel,
	}

	k, ok, err := it.NextKey(ctx, time.Millisecond)
	if err != nil || !ok || !k.Is(key.Rune('a')) {
		t.Fatalf("first key = %v, %v, %v; want a", k, ok, err)
	}
	if ctx.Err() != nil {
		t.Fatal("cancelled before ctrl+c")
	}

	_, ok, err = it.NextKey(ctx, time.Millisecond)
	if ok || err != nil {
		t.Errorf("ctrl+c delivered as key: ok=%v err=%v", ok, err)
	}
	if ctx.Err() == nil {
		t.Error("ctrl+c did not cancel")
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"notes.MARKDOWN", true},
		{"main.go", false},
		{"md", false},
	}
	for _, tt := range tests {
		if got := isMarkdown(tt.path); got != tt.want {
			t.Errorf("isMarkdown(%q) = %v; want %v", tt.path, got, tt.want)
		}
	}
}

func TestViewBuilder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	md := filepath.Join(dir, "doc.md")
	txt := filepath.Join(dir, "notes.txt")
	for _, p := range []string{md, txt} {
		if err := os.WriteFile(p, []byte("# Title\n\nbody"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	a := testApp()
	term := newScriptTerm(80, 24)

	tests := []struct {
		name     string
		path     string
		flags    viewFlags
		markdown bool
		title    string
	}{
		{"markdown by extension", md, viewFlags{width: "auto", height: "auto"}, true, "doc.md"},
		{"plain overrides extension", md, viewFlags{plain: true, width: "auto", height: "auto"}, false, "doc.md"},
		{"markdown flag", txt, viewFlags{markdown: true, title: "Notes"}, true, "Notes"},
		{"plain text", txt, viewFlags{}, false, "notes.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			build, err := a.viewBuilder(tt.path, tt.flags)
			if err != nil {
				t.Fatal(err)
			}
			w, err := build(term)
			if err != nil {
				t.Fatal(err)
			}
			_, isMD := w.(*component.Markdown)
			if isMD != tt.markdown {
				t.Errorf("markdown window = %v; want %v", isMD, tt.markdown)
			}
			if got := w.State().Title(); got != tt.title {
				t.Errorf("title = %q; want %q", got, tt.title)
			}
		})
	}
}

func TestViewBuilder_Geometry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := testApp()

	build, err := a.viewBuilder(path, viewFlags{width: "50%", height: "10", noBorder: true})
	if err != nil {
		t.Fatal(err)
	}
	w, err := build(newScriptTerm(80, 24))
	if err != nil {
		t.Fatal(err)
	}
	if f := w.State().Frame(); f.Width != 40 || f.Height != 10 {
		t.Errorf("frame = %v; want 40x10", f)
	}
	if w.State().HasBorder() {
		t.Error("--no-border ignored")
	}

	if _, err := a.viewBuilder(path, viewFlags{width: "200%"}); err == nil {
		t.Error("out-of-range width accepted")
	}
}
