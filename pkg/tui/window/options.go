// ABOUTME: Functional options for window construction and controller setup.
// ABOUTME: Defaults: border on, "[Esc=Close]" status bar, Escape cancels, all dims auto.

package window

import (
	"time"

	"github.com/mauromedda/termwindows/pkg/tui/key"
	"github.com/mauromedda/termwindows/pkg/tui/layout"
	"github.com/mauromedda/termwindows/pkg/tui/theme"
)

// DefaultStatusBar is shown in the bottom border unless overridden.
const DefaultStatusBar = "[Esc=Close]"

type options struct {
	title     string
	statusBar string
	border    bool
	cancel    key.Key
	spec      layout.Spec
	resolver  layout.Resolver
	theme     *theme.Theme
}

func defaultOptions() options {
	return options{
		statusBar: DefaultStatusBar,
		border:    true,
		cancel:    key.Named(key.KeyEscape),
	}
}

// Option configures a Base created by NewBase.
type Option func(*options)

// WithTitle sets the text centered in the top border.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSize sets the width and height specifications.
func WithSize(width, height layout.Dim) Option {
	return func(o *options) {
		o.spec.Width = width
		o.spec.Height = height
	}
}

// WithPosition sets the x and y specifications.
func WithPosition(x, y layout.Dim) Option {
	return func(o *options) {
		o.spec.X = x
		o.spec.Y = y
	}
}

// WithSpec replaces all four axis specifications.
func WithSpec(spec layout.Spec) Option {
	return func(o *options) {
		o.spec = spec
	}
}

// WithBorder toggles the border. Without one, content equals frame.
func WithBorder(on bool) Option {
	return func(o *options) {
		o.border = on
	}
}

// WithStatusBar sets the bottom border text. Empty hides it.
func WithStatusBar(text string) Option {
	return func(o *options) {
		o.statusBar = text
	}
}

// WithCancelKey sets the key that closes the window.
func WithCancelKey(k key.Key) Option {
	return func(o *options) {
		o.cancel = k
	}
}

// WithResolver sets the resolver used for geometry, e.g. to change the auto ceiling.
func WithResolver(r layout.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithTheme pins a theme. Without it the window follows theme.Current.
func WithTheme(t *theme.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

const (
	// DefaultInputTimeout bounds each key wait and so sets the tick cadence.
	DefaultInputTimeout = 100 * time.Millisecond
	// DefaultIdleSleep is the pause between Run iterations.
	DefaultIdleSleep = 10 * time.Millisecond
)

type controllerOptions struct {
	inputTimeout time.Duration
	idleSleep    time.Duration
	onTick       func()
}

// ControllerOption configures a Controller created by NewController.
type ControllerOption func(*controllerOptions)

// WithInputTimeout sets how long each iteration waits for a key.
func WithInputTimeout(d time.Duration) ControllerOption {
	return func(o *controllerOptions) {
		o.inputTimeout = d
	}
}

// WithIdleSleep sets the pause between Run iterations. Zero disables it.
func WithIdleSleep(d time.Duration) ControllerOption {
	return func(o *controllerOptions) {
		o.idleSleep = d
	}
}

// WithTickHook registers fn to run once per iteration after the top window's Tick.
func WithTickHook(fn func()) ControllerOption {
	return func(o *controllerOptions) {
		o.onTick = fn
	}
}
