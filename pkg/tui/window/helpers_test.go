// ABOUTME: Test doubles for the window package: a canvas-backed terminal and a recorder window.
// ABOUTME: The recorder counts hook calls so tests can assert routing and draw cadence.

package window

import (
	"context"
	"testing"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/canvas"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
)

// fakeTerm is a Terminal over an in-memory canvas with scripted keys.
type fakeTerm struct {
	*canvas.Canvas
	keys   []key.Key
	keyErr error

	flushes   int
	refreshes int
	acquires  int
	releases  int
}

var _ Terminal = (*fakeTerm)(nil)

func newFakeTerm(w, h int, keys ...key.Key) *fakeTerm {
	return &fakeTerm{Canvas: canvas.New(w, h), keys: keys}
}

func (f *fakeTerm) Flush() error { f.flushes++; return nil }

func (f *fakeTerm) Refresh() error {
	f.refreshes++
	f.Clear()
	return nil
}

func (f *fakeTerm) NextKey(ctx context.Context, _ time.Duration) (key.Key, bool, error) {
	if err := ctx.Err(); err != nil {
		return key.Key{}, false, err
	}
	if f.keyErr != nil {
		return key.Key{}, false, f.keyErr
	}
	if len(f.keys) == 0 {
		return key.Key{}, false, nil
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, true, nil
}

func (f *fakeTerm) Acquire() (func() error, error) {
	f.acquires++
	return func() error { f.releases++; return nil }, nil
}

func (f *fakeTerm) feed(keys ...key.Key) { f.keys = append(f.keys, keys...) }

// recorder is a window that records every hook call.
type recorder struct {
	*Base
	draws, inputs, ticks, resizes int

	onKey  func(p *recorder, k key.Key)
	onTick func(p *recorder)
}

func newRecorder(t *testing.T, d Display, title string, opts ...Option) *recorder {
	t.Helper()
	opts = append([]Option{WithTitle(title), WithTheme(theme.Builtin("default"))}, opts...)
	b, err := NewBase(d, opts...)
	if err != nil {
		t.Fatalf("NewBase(%q): %v", title, err)
	}
	return &recorder{Base: b}
}

func (p *recorder) Draw() {
	p.draws++
	p.Base.Draw()
}

func (p *recorder) HandleInput(k key.Key) {
	p.inputs++
	if p.onKey != nil {
		p.onKey(p, k)
		return
	}
	p.Base.HandleInput(k)
}

func (p *recorder) HandleResize() {
	p.resizes++
	p.Base.HandleResize()
}

func (p *recorder) Tick() {
	p.ticks++
	if p.onTick != nil {
		p.onTick(p)
	}
}

func step(t *testing.T, c *Controller) bool {
	t.Helper()
	done, err := c.Step(context.Background())
	if err != nil {
		t.Fatalf("Step(): %v", err)
	}
	return done
}
