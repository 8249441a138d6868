// ABOUTME: Tests for Reader: key decoding from byte streams, escape timeout, paste skipping.
// ABOUTME: Uses in-memory readers and io.Pipe to simulate terminal input.

package input

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/key"
)

// collect starts a Reader over src and gathers keys until the source ends.
func collect(t *testing.T, src io.Reader) []key.Key {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r := NewReader(src)
	go r.Start(ctx)

	var got []key.Key
	for {
		k, ok, err := r.Next(ctx, 500*time.Millisecond)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("Next: unexpected error %v", err)
			}
			return got
		}
		if ok {
			got = append(got, k)
		}
	}
}

func TestReader_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []key.Key
	}{
		{"single rune", "a", []key.Key{key.Rune('a')}},
		{"multiple runes", "abc", []key.Key{key.Rune('a'), key.Rune('b'), key.Rune('c')}},
		{"enter", "\r", []key.Key{key.Named(key.KeyEnter)}},
		{"ctrl+c", "\x03", []key.Key{key.Ctrl('c')}},
		{"arrow up", "\x1b[A", []key.Key{key.Named(key.KeyUp)}},
		{"arrow then rune", "\x1b[Bx", []key.Key{key.Named(key.KeyDown), key.Rune('x')}},
		{"page down", "\x1b[6~", []key.Key{key.Named(key.KeyPageDown)}},
		{"ss3 home", "\x1bOH", []key.Key{key.Named(key.KeyHome)}},
		{"alt rune", "\x1bx", []key.Key{{Type: key.KeyRune, Rune: 'x', Alt: true}}},
		{"multibyte rune", "é", []key.Key{key.Rune('é')}},
		{"lone escape at end", "\x1b", []key.Key{key.Named(key.KeyEscape)}},
		{"double escape", "\x1b\x1b", []key.Key{key.Named(key.KeyEscape), key.Named(key.KeyEscape)}},
		{"paste skipped", "\x1b[200~hello\x1b[201~q", []key.Key{key.Rune('q')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := collect(t, bytes.NewBufferString(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d keys %v; want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key[%d] = %+v; want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReader_LoneEscapeTimeout(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r := NewReader(pr)
	go r.Start(ctx)

	if _, err := pw.Write([]byte{0x1b}); err != nil {
		t.Fatalf("write: %v", err)
	}

	k, ok, err := r.Next(ctx, time.Second)
	if err != nil || !ok {
		t.Fatalf("Next = (%v, %v, %v); want escape", k, ok, err)
	}
	if k.Type != key.KeyEscape {
		t.Errorf("got %v; want Escape", k)
	}
}

func TestReader_SplitSequence(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r := NewReader(pr)
	go r.Start(ctx)

	// Both halves arrive well inside the escape timeout.
	if _, err := pw.Write([]byte("\x1b[")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := pw.Write([]byte("C")); err != nil {
		t.Fatalf("write: %v", err)
	}

	k, ok, err := r.Next(ctx, time.Second)
	if err != nil || !ok {
		t.Fatalf("Next = (%v, %v, %v); want right arrow", k, ok, err)
	}
	if k.Type != key.KeyRight {
		t.Errorf("got %v; want Right", k)
	}
}

func TestReader_NextTimeout(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewReader(pr)
	go r.Start(ctx)

	start := time.Now()
	_, ok, err := r.Next(ctx, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ok {
		t.Fatal("expected no key")
	}
	if time.Since(start) < 15*time.Millisecond {
		t.Error("Next returned before the timeout elapsed")
	}

	// Zero timeout polls.
	if _, ok, err := r.Next(ctx, 0); ok || err != nil {
		t.Errorf("poll = (%v, %v); want (false, nil)", ok, err)
	}
}

func TestReader_ContextCancel(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewReader(pr)

	finished := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(finished)
	}()

	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}

	select {
	case <-r.Done():
	default:
		t.Fatal("Done not closed after Start returned")
	}
}
