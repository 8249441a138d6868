// ABOUTME: Shared fixtures for component tests: a canvas display and a scripted terminal.
// ABOUTME: Windows are pinned to the default theme so border glyphs are ASCII.

package component

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/canvas"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

func pinned(opts ...window.Option) []window.Option {
	return append([]window.Option{window.WithTheme(theme.Builtin("default"))}, opts...)
}

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line " + string(rune('a'+i%26))
	}
	return strings.Join(lines, "\n")
}

// scriptTerm is a window.Terminal over a canvas that replays keys.
type scriptTerm struct {
	*canvas.Canvas
	keys []key.Key
}

var _ window.Terminal = (*scriptTerm)(nil)

func (s *scriptTerm) Flush() error   { return nil }
func (s *scriptTerm) Refresh() error { s.Clear(); return nil }

func (s *scriptTerm) NextKey(context.Context, time.Duration) (key.Key, bool, error) {
	if len(s.keys) == 0 {
		return key.Key{}, false, nil
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true, nil
}

func (s *scriptTerm) Acquire() (func() error, error) {
	return func() error { return nil }, nil
}

func mustStep(t *testing.T, c *window.Controller) bool {
	t.Helper()
	done, err := c.Step(context.Background())
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return done
}
