// ABOUTME: Controller owns the window stack and runs the resize/input/reconcile/draw/tick loop.
// ABOUTME: Only the top window receives keys and ticks; an empty stack ends Run.

package window

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/mauromedda/termwindows/internal/log"
)

// Controller is the single owner of a window stack. All methods except
// NotifyResize must be called from the goroutine running the loop.
type Controller struct {
	term  Terminal
	stack []Window
	opts  controllerOptions

	resizePending atomic.Bool
}

// NewController creates a controller drawing to term.
func NewController(term Terminal, opts ...ControllerOption) *Controller {
	o := controllerOptions{
		inputTimeout: DefaultInputTimeout,
		idleSleep:    DefaultIdleSleep,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.inputTimeout <= 0 {
		o.inputTimeout = DefaultInputTimeout
	}
	return &Controller{term: term, opts: o}
}

// Push binds w to the terminal, lets it lay itself out and puts it on
// top of the stack with a pending redraw. A window already on the stack
// is not pushed again.
func (c *Controller) Push(w Window) error {
	if w == nil {
		return ErrNilWindow
	}
	if c.contains(w) {
		return fmt.Errorf("pushing window: %w", ErrCycle)
	}
	st := w.State()
	st.SetDisplay(c.term)
	w.HandleResize()
	st.Invalidate()
	c.stack = append(c.stack, w)
	log.Debug("window: push %q (depth %d)", st.Title(), len(c.stack))
	return nil
}

// Pop removes and returns the top window. The window below, if any, has
// its pending child cleared and is marked for redraw.
func (c *Controller) Pop() Window {
	if len(c.stack) == 0 {
		return nil
	}
	top := c.stack[len(c.stack)-1]
	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]
	log.Debug("window: pop %q (depth %d)", top.State().Title(), len(c.stack))

	if parent := c.Top(); parent != nil {
		parent.State().clearChild()
		parent.State().Invalidate()
	}
	return top
}

// Top returns the window receiving input, or nil when the stack is empty.
func (c *Controller) Top() Window {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Len returns the stack depth.
func (c *Controller) Len() int { return len(c.stack) }

// Windows returns a snapshot of the stack, bottom first.
func (c *Controller) Windows() []Window { return slices.Clone(c.stack) }

// NotifyResize records that the terminal changed size. It is safe to
// call from any goroutine; the next Step consumes it.
func (c *Controller) NotifyResize() { c.resizePending.Store(true) }

func (c *Controller) contains(w Window) bool {
	st := w.State()
	for _, s := range c.stack {
		if s.State() == st {
			return true
		}
	}
	return false
}

// Step runs one loop iteration: resize, input, routing, lifecycle
// reconciliation, redraw and tick, in that order. It reports done once
// the stack is empty.
func (c *Controller) Step(ctx context.Context) (done bool, err error) {
	if len(c.stack) == 0 {
		return true, nil
	}

	if c.resizePending.Swap(false) {
		if err := c.resize(); err != nil {
			return false, err
		}
	}

	k, ok, err := c.term.NextKey(ctx, c.opts.inputTimeout)
	if err != nil {
		return false, err
	}
	if ok {
		c.Top().HandleInput(k)
	}

	c.reconcile()
	if len(c.stack) == 0 {
		return true, c.term.Flush()
	}

	top := c.Top()
	if top.State().NeedsRedraw() {
		c.draw(top)
	}

	top.Tick()
	if c.opts.onTick != nil {
		c.opts.onTick()
	}

	return false, c.term.Flush()
}

// resize refreshes the terminal, rebinds every window to it and repaints
// the stack bottom-up over the cleared screen.
func (c *Controller) resize() error {
	if err := c.term.Refresh(); err != nil {
		return fmt.Errorf("refreshing terminal: %w", err)
	}
	for _, w := range c.stack {
		w.State().SetDisplay(c.term)
		w.HandleResize()
	}
	w, h := c.term.Size()
	log.Debug("window: resize to %dx%d", w, h)

	for _, w := range c.stack[:len(c.stack)-1] {
		c.draw(w)
	}
	c.Top().State().Invalidate()
	return nil
}

// reconcile applies the top window's lifecycle flags.
func (c *Controller) reconcile() {
	for {
		top := c.Top()
		if top == nil {
			return
		}
		st := top.State()

		if st.Closed() {
			c.Pop()
			continue
		}

		child := st.Child()
		if child == nil {
			return
		}
		st.clearChild()
		if err := c.Push(child); err != nil {
			log.Warn("window: discarding child %q: %v", child.State().Title(), err)
			return
		}
		c.draw(child)
		return
	}
}

func (c *Controller) draw(w Window) {
	w.State().clearRedraw()
	w.Draw()
}

// Run acquires the terminal and loops until the stack drains. It returns
// ErrEmptyStack when called with no windows. When ctx is cancelled the
// remaining windows are closed and popped top-down before Run returns
// ctx.Err().
func (c *Controller) Run(ctx context.Context) (err error) {
	if len(c.stack) == 0 {
		return ErrEmptyStack
	}

	release, err := c.term.Acquire()
	if err != nil {
		return fmt.Errorf("acquiring terminal: %w", err)
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = fmt.Errorf("releasing terminal: %w", rerr)
		}
	}()

	c.draw(c.Top())
	if err := c.term.Flush(); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			c.drain()
			return ctx.Err()
		}

		done, err := c.Step(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				c.drain()
				return ctxErr
			}
			return err
		}
		if done {
			return nil
		}

		if c.opts.idleSleep > 0 {
			t := time.NewTimer(c.opts.idleSleep)
			select {
			case <-ctx.Done():
			case <-t.C:
			}
			t.Stop()
		}
	}
}

// drain closes every stacked window top-down through the normal pop path.
func (c *Controller) drain() {
	for len(c.stack) > 0 {
		c.Top().State().Close()
		c.reconcile()
	}
	log.Debug("window: stack drained")
}
