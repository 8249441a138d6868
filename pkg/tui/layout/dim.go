// ABOUTME: Dim describes one axis of a window geometry: absolute, relative, or auto
// ABOUTME: Spec groups the four axes; Validate rejects negative sizes and out-of-range fractions

package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel validation errors. Callers match them with errors.Is.
var (
	ErrNegativeSize  = errors.New("negative absolute size")
	ErrFractionRange = errors.New("relative fraction outside [0, 1]")
)

type dimKind uint8

const (
	kindAuto dimKind = iota
	kindAbsolute
	kindRelative
)

// Dim is a single axis specification. The zero value is Auto.
type Dim struct {
	kind dimKind
	n    int
	f    float64
}

// Auto fills the container (sizes) or centers within it (positions).
var Auto = Dim{}

// Abs returns a fixed cell count.
func Abs(n int) Dim {
	return Dim{kind: kindAbsolute, n: n}
}

// Rel returns a fraction of the container extent, 0.0 to 1.0.
func Rel(f float64) Dim {
	return Dim{kind: kindRelative, f: f}
}

// IsAuto reports whether d is Auto.
func (d Dim) IsAuto() bool { return d.kind == kindAuto }

// IsAbsolute reports whether d is a fixed cell count.
func (d Dim) IsAbsolute() bool { return d.kind == kindAbsolute }

// IsRelative reports whether d is a container fraction.
func (d Dim) IsRelative() bool { return d.kind == kindRelative }

// Cells returns the absolute cell count; zero for other kinds.
func (d Dim) Cells() int { return d.n }

// Fraction returns the relative fraction; zero for other kinds.
func (d Dim) Fraction() float64 { return d.f }

// Validate reports whether d can be resolved.
func (d Dim) Validate() error {
	switch d.kind {
	case kindAbsolute:
		if d.n < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeSize, d.n)
		}
	case kindRelative:
		if math.IsNaN(d.f) || d.f < 0 || d.f > 1 {
			return fmt.Errorf("%w: %g", ErrFractionRange, d.f)
		}
	}
	return nil
}

func (d Dim) String() string {
	switch d.kind {
	case kindAbsolute:
		return fmt.Sprintf("%d", d.n)
	case kindRelative:
		return fmt.Sprintf("%g%%", d.f*100)
	default:
		return "auto"
	}
}

// ParseDim reads the forms String produces: "auto" (or empty), a cell
// count like "12", or a percentage like "50%". A decimal such as "0.5"
// is taken as a fraction. The result is validated.
func ParseDim(s string) (Dim, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	var d Dim
	switch {
	case s == "" || s == "auto":
		return Auto, nil
	case strings.HasSuffix(s, "%"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Dim{}, fmt.Errorf("parsing dimension %q: %w", s, err)
		}
		d = Rel(f / 100)
	case strings.Contains(s, "."):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Dim{}, fmt.Errorf("parsing dimension %q: %w", s, err)
		}
		d = Rel(f)
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Dim{}, fmt.Errorf("parsing dimension %q: %w", s, err)
		}
		d = Abs(n)
	}
	if err := d.Validate(); err != nil {
		return Dim{}, err
	}
	return d, nil
}

// Spec is the declarative geometry of a window.
type Spec struct {
	X      Dim
	Y      Dim
	Width  Dim
	Height Dim
}

// Validate checks every axis and names the first offending one.
func (s Spec) Validate() error {
	axes := []struct {
		name string
		dim  Dim
	}{
		{"x", s.X},
		{"y", s.Y},
		{"width", s.Width},
		{"height", s.Height},
	}
	for _, a := range axes {
		if err := a.dim.Validate(); err != nil {
			return fmt.Errorf("%s: %w", a.name, err)
		}
	}
	return nil
}
