// ABOUTME: Tests for the ANSI host: cursor addressing, clipping, framing, and lifecycle.
// ABOUTME: Runs against terminal.VirtualTerminal so no TTY is needed.

package screen

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/terminal"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
)

func newScreen(t *testing.T, w, h int, opts ...Option) (*Screen, *terminal.VirtualTerminal) {
	t.Helper()
	vt := terminal.NewVirtualTerminal(w, h)
	s, err := New(vt, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, vt
}

func TestScreen_Size(t *testing.T) {
	t.Parallel()

	s, _ := newScreen(t, 80, 24)
	if w, h := s.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %d,%d; want 80,24", w, h)
	}
}

func TestScreen_PrintAtAddressing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  int
		col  int
		text string
		want string
	}{
		{"origin", 0, 0, "hi", "\x1b[1;1Hhi"},
		{"offset", 2, 5, "x", "\x1b[3;6Hx"},
		{"clip right", 0, 8, "hello", "\x1b[1;9Hhe"},
		{"clip left", 1, -2, "hello", "\x1b[2;1Hllo"},
		{"below", 5, 0, "x", ""},
		{"above", -1, 0, "x", ""},
		{"past right", 0, 10, "x", ""},
		{"empty", 0, 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, vt := newScreen(t, 10, 5, WithSynchronizedOutput(false))
			s.PrintAt(tt.row, tt.col, tt.text, theme.Style{})
			if err := s.Flush(); err != nil {
				t.Fatalf("Flush: %v", err)
			}
			if got := vt.Output(); got != tt.want {
				t.Errorf("output = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestScreen_FlushSynchronized(t *testing.T) {
	t.Parallel()

	s, vt := newScreen(t, 10, 5)
	s.PrintAt(0, 0, "a", theme.Style{})
	s.PrintAt(1, 0, "b", theme.Style{})
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := terminal.SyncBegin + "\x1b[1;1Ha\x1b[2;1Hb" + terminal.SyncEnd
	if got := vt.Output(); got != want {
		t.Errorf("output = %q; want %q", got, want)
	}

	vt.Reset()
	if err := s.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	if got := vt.Output(); got != "" {
		t.Errorf("empty flush wrote %q", got)
	}
}

func TestScreen_StyledTextResets(t *testing.T) {
	t.Parallel()

	s, vt := newScreen(t, 10, 5, WithSynchronizedOutput(false))
	s.PrintAt(0, 0, "ok", theme.Style{Reverse: true})
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	out := vt.Output()
	if !strings.HasPrefix(out, "\x1b[1;1H") {
		t.Errorf("missing cursor move in %q", out)
	}
	if !strings.Contains(out, "ok") || !strings.HasSuffix(out, terminal.ResetStyle) {
		t.Errorf("styled output %q lacks text or trailing reset", out)
	}
}

func TestScreen_RefreshReadsSizeAndClears(t *testing.T) {
	t.Parallel()

	s, vt := newScreen(t, 10, 5, WithSynchronizedOutput(false))
	s.PrintAt(0, 0, "stale", theme.Style{})
	vt.SetSize(30, 8)

	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if w, h := s.Size(); w != 30 || h != 8 {
		t.Errorf("Size() after Refresh = %d,%d; want 30,8", w, h)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := vt.Output()
	if strings.Contains(out, "stale") {
		t.Errorf("Refresh kept queued output: %q", out)
	}
	if !strings.Contains(out, terminal.ClearScreen) {
		t.Errorf("Refresh did not clear: %q", out)
	}
}

func TestScreen_AcquireRelease(t *testing.T) {
	t.Parallel()

	s, vt := newScreen(t, 10, 5)
	release, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !vt.IsRawMode() {
		t.Error("Acquire did not enter raw mode")
	}
	if out := vt.Output(); !strings.Contains(out, terminal.EnterAltScreen) || !strings.Contains(out, terminal.HideCursor) {
		t.Errorf("Acquire output = %q", out)
	}

	vt.Reset()
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
	if vt.IsRawMode() {
		t.Error("release left raw mode on")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount = %d; want 1", vt.ExitCount())
	}
	if out := vt.Output(); !strings.Contains(out, terminal.ExitAltScreen) || !strings.Contains(out, terminal.ShowCursor) {
		t.Errorf("release output = %q", out)
	}
}

func TestScreen_NextKey(t *testing.T) {
	t.Parallel()

	s, vt := newScreen(t, 10, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	go func() { _ = vt.Type("q\x1b[A") }()

	want := []key.Key{key.Rune('q'), key.Named(key.KeyUp)}
	for i, w := range want {
		k, ok, err := s.NextKey(ctx, time.Second)
		if err != nil || !ok {
			t.Fatalf("NextKey #%d: ok=%v err=%v", i, ok, err)
		}
		if !k.Is(w) {
			t.Errorf("NextKey #%d = %v; want %v", i, k, w)
		}
	}

	if _, ok, err := s.NextKey(ctx, 10*time.Millisecond); ok || err != nil {
		t.Errorf("idle NextKey: ok=%v err=%v; want timeout", ok, err)
	}
}

func TestScreen_Watch(t *testing.T) {
	t.Parallel()

	s, vt := newScreen(t, 10, 5)
	var calls atomic.Int32
	s.Watch(func() { calls.Add(1) })

	vt.SetSize(12, 6)
	if calls.Load() != 1 {
		t.Errorf("resize callbacks = %d; want 1", calls.Load())
	}
}
