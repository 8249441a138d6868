// ABOUTME: Host runner: builds the main window on the chosen display and drives the controller
// ABOUTME: Ctrl+C cancels the run so every host restores the terminal the same way

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	xterm "golang.org/x/term"

	"github.com/mauromedda/termwindows/internal/config"
	"github.com/mauromedda/termwindows/internal/log"
	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/screen"
	"github.com/mauromedda/termwindows/pkg/tui/tcellhost"
	"github.com/mauromedda/termwindows/pkg/tui/teahost"
	"github.com/mauromedda/termwindows/pkg/tui/terminal"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/window"
)

// builder creates the main window once the display exists.
type builder func(d window.Display) (window.Window, error)

var errNotTerminal = errors.New("stdin is not a terminal")

// interruptTerm turns Ctrl+C into cancellation. Raw mode delivers it as
// a key instead of SIGINT.
type interruptTerm struct {
	window.Terminal
	cancel context.CancelFunc
}

func (t *interruptTerm) NextKey(ctx context.Context, timeout time.Duration) (key.Key, bool, error) {
	k, ok, err := t.Terminal.NextKey(ctx, timeout)
	if ok && k.Is(key.Ctrl('c')) {
		log.Info("termwin: interrupted")
		t.cancel()
		return key.Key{}, false, nil
	}
	return k, ok, err
}

// run shows the window produced by build on the configured host until
// the stack empties or the user interrupts.
func (a *app) run(ctx context.Context, build builder) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch a.settings.Host {
	case "tcell":
		err = a.runTcell(ctx, build)
	case "tea":
		err = a.runTea(ctx, build)
	default:
		err = a.runANSI(ctx, build)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) runANSI(ctx context.Context, build builder) error {
	pt := terminal.NewProcessTerminal()
	defer func() { _ = pt.Close() }()
	defer terminal.RestoreOnPanic(pt)

	if !pt.IsTerminal() {
		return errNotTerminal
	}
	scr, err := screen.New(pt)
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	return a.drive(ctx, scr, scr.Watch, scr.Start, build)
}

func (a *app) runTcell(ctx context.Context, build builder) error {
	host, err := tcellhost.New()
	if err != nil {
		return fmt.Errorf("opening tcell screen: %w", err)
	}
	return a.drive(ctx, host, host.Watch, nil, build)
}

// drive pushes the main window and runs the controller next to the
// input pump and the theme watcher.
func (a *app) drive(ctx context.Context, term window.Terminal, watch func(func()), pump func(context.Context), build builder) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	it := &interruptTerm{Terminal: term, cancel: cancel}
	ctrl := window.NewController(it, a.settings.ControllerOptions()...)
	top, err := build(it)
	if err != nil {
		return err
	}
	if err := ctrl.Push(top); err != nil {
		return err
	}
	watch(ctrl.NotifyResize)

	g, gctx := errgroup.WithContext(ctx)
	if pump != nil {
		g.Go(func() error {
			pump(gctx)
			return nil
		})
	}
	g.Go(func() error {
		a.watchTheme(gctx, ctrl.NotifyResize)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return ctrl.Run(gctx)
	})
	return g.Wait()
}

func (a *app) runTea(ctx context.Context, build builder) error {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tt := teahost.NewTerm(w, h)
	it := &interruptTerm{Terminal: tt, cancel: cancel}
	ctrl := window.NewController(it, a.settings.ControllerOptions()...)
	top, err := build(it)
	if err != nil {
		return err
	}
	if err := ctrl.Push(top); err != nil {
		return err
	}

	go a.watchTheme(ctx, ctrl.NotifyResize)
	return teahost.Run(ctx, teahost.NewModel(ctrl, tt, a.settings.InputTimeout))
}

// watchTheme reloads a file-based theme when it changes and asks the
// controller for a full repaint. Built-in themes are not watched.
func (a *app) watchTheme(ctx context.Context, repaint func()) {
	paths := a.settings.ThemeFiles()
	if len(paths) == 0 {
		return
	}
	_ = config.Watch(ctx, paths, config.DefaultWatchInterval, func() {
		th, err := a.settings.ResolveTheme()
		if err != nil {
			log.Warn("termwin: reloading theme: %v", err)
			return
		}
		theme.Set(th)
		log.Info("termwin: theme %q reloaded", th.Name)
		repaint()
	})
}
