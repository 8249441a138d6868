// ABOUTME: Reader decodes raw terminal bytes into keys and queues them for Next.
// ABOUTME: Handles escape sequence buffering, lone-ESC timeout (~50ms), and bracketed paste skipping.

package input

import (
	"context"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/termwindows/pkg/tui/key"
)

const (
	readBufSize  = 256
	queueSize    = 64
	escTimeout   = 50 * time.Millisecond
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// Reader reads from a source and queues parsed keys. Start pumps the
// source; Next hands keys out one at a time with a bounded wait.
type Reader struct {
	src  io.Reader
	keys chan key.Key
	buf  []byte

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// NewReader creates a Reader over r. Call Start to begin decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		src:  r,
		keys: make(chan key.Key, queueSize),
		buf:  make([]byte, 0, readBufSize),
		done: make(chan struct{}),
	}
}

// Start reads from the source until ctx is cancelled or the source returns an error.
// It blocks until completion; run it in a goroutine.
func (r *Reader) Start(ctx context.Context) {
	readCh := make(chan readResult)
	stop := make(chan struct{})

	go r.readLoop(readCh, stop)
	defer close(stop)

	var timer *time.Timer
	var timeout <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			r.finish(ctx.Err())
			return
		case result, ok := <-readCh:
			if !ok || result.err != nil {
				r.drain(ctx, true)
				err := io.EOF
				if ok && result.err != nil {
					err = result.err
				}
				r.finish(err)
				return
			}
			r.buf = append(r.buf, result.data...)
		case <-timeout:
			// Nothing followed the partial sequence; decode what we have.
			timeout = nil
			r.drain(ctx, true)
			continue
		}

		if r.drain(ctx, false) {
			if timer == nil {
				timer = time.NewTimer(escTimeout)
			} else {
				timer.Reset(escTimeout)
			}
			timeout = timer.C
		} else {
			timeout = nil
		}
	}
}

// Next returns the next key, waiting at most timeout. ok is false when the
// wait elapsed without input. A non-positive timeout polls without waiting.
// Once the source is exhausted and the queue drained, Next returns its error.
func (r *Reader) Next(ctx context.Context, timeout time.Duration) (k key.Key, ok bool, err error) {
	select {
	case k := <-r.keys:
		return k, true, nil
	default:
	}

	if timeout <= 0 {
		select {
		case <-r.done:
			return key.Key{}, false, r.err
		default:
			return key.Key{}, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-r.keys:
		return k, true, nil
	case <-r.done:
		select {
		case k := <-r.keys:
			return k, true, nil
		default:
		}
		return key.Key{}, false, r.err
	case <-timer.C:
		return key.Key{}, false, nil
	case <-ctx.Done():
		return key.Key{}, false, ctx.Err()
	}
}

// Done is closed once the source is exhausted or Start's context ends.
func (r *Reader) Done() <-chan struct{} {
	return r.done
}

func (r *Reader) finish(err error) {
	r.doneOnce.Do(func() {
		r.err = err
		close(r.done)
	})
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the source and sends data on ch.
// It stops when stop is closed, preventing goroutine leaks on context cancellation.
func (r *Reader) readLoop(ch chan<- readResult, stop <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := r.src.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-stop:
				return
			}
		}
		if err != nil {
			select {
			case ch <- readResult{err: err}:
			case <-stop:
			}
			return
		}
	}
}

// drain decodes every complete key in the buffer. It reports whether a
// partial sequence remains that needs more bytes. With force set, partial
// sequences are decoded as best as possible instead.
func (r *Reader) drain(ctx context.Context, force bool) (pending bool) {
	for len(r.buf) > 0 {
		n, k, wait := r.tryParse(force)
		if wait {
			return true
		}
		r.buf = r.buf[n:]
		if k.Type == key.KeyUnknown {
			continue
		}
		select {
		case r.keys <- k:
		case <-ctx.Done():
			return false
		}
	}
	return false
}

// tryParse attempts to parse one key from the front of r.buf.
// Returns (consumed bytes, parsed key, needs-wait flag).
func (r *Reader) tryParse(force bool) (int, key.Key, bool) {
	buf := r.buf

	if n, wait := r.bracketedPaste(force); wait || n > 0 {
		return n, key.Key{Type: key.KeyUnknown}, wait
	}

	if buf[0] == 0x1b {
		return parseEscape(buf, force)
	}

	if !utf8.FullRune(buf) {
		if !force {
			return 0, key.Key{}, true
		}
		return 1, key.Key{Type: key.KeyUnknown}, false
	}

	rn, size := utf8.DecodeRune(buf)
	if rn == utf8.RuneError {
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	return size, key.ParseKey(string(buf[:size])), false
}

// parseEscape decodes an ESC-prefixed sequence at the front of buf.
func parseEscape(buf []byte, force bool) (int, key.Key, bool) {
	if len(buf) == 1 {
		if !force {
			return 0, key.Key{}, true
		}
		return 1, key.Named(key.KeyEscape), false
	}

	switch buf[1] {
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7E
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return i + 1, key.ParseKey(string(buf[:i+1])), false
			}
		}
		if !force {
			return 0, key.Key{}, true
		}
		return 1, key.Named(key.KeyEscape), false
	case 'O':
		if len(buf) >= 3 {
			return 3, key.ParseKey(string(buf[:3])), false
		}
		if !force {
			return 0, key.Key{}, true
		}
		return 1, key.Named(key.KeyEscape), false
	}

	// Alt+rune
	rest := buf[1:]
	if !utf8.FullRune(rest) && !force {
		return 0, key.Key{}, true
	}
	_, size := utf8.DecodeRune(rest)
	k := key.ParseKey(string(buf[:1+size]))
	if k.Type == key.KeyUnknown {
		return 1, key.Named(key.KeyEscape), false
	}
	return 1 + size, k, false
}

// bracketedPaste detects and skips bracketed paste content.
func (r *Reader) bracketedPaste(force bool) (consumed int, wait bool) {
	s := string(r.buf)
	if len(s) < len(bracketStart) {
		return 0, false
	}
	if s[:len(bracketStart)] != bracketStart {
		return 0, false
	}
	for i := len(bracketStart); i <= len(s)-len(bracketEnd); i++ {
		if s[i:i+len(bracketEnd)] == bracketEnd {
			return i + len(bracketEnd), false
		}
	}
	if force {
		return len(s), false
	}
	return 0, true
}
