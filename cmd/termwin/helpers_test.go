// ABOUTME: Shared fixtures for CLI tests: an isolated HOME and a scripted canvas terminal
// ABOUTME: Scripted keys are consumed one per controller step

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mauromedda/termwindows/internal/config"
	"github.com/mauromedda/termwindows/pkg/tui/canvas"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

type scriptTerm struct {
	*canvas.Canvas
	keys []key.Key
}

var _ window.Terminal = (*scriptTerm)(nil)

func newScriptTerm(w, h int, keys ...key.Key) *scriptTerm {
	return &scriptTerm{Canvas: canvas.New(w, h), keys: keys}
}

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

func testApp() *app {
	return &app{settings: config.Defaults()}
}

// execute runs the command tree with args under a temporary HOME.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func step(t *testing.T, c *window.Controller) bool {
	t.Helper()
	done, err := c.Step(context.Background())
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return done
}

func topTitle(c *window.Controller) string {
	if c.Top() == nil {
		return ""
	}
	return c.Top().State().Title()
}
