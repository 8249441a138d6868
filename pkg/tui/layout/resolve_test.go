// ABOUTME: Tests for Resolver: absolute, relative, auto sizing, centering, and clamping
// ABOUTME: Table-driven; also checks determinism and containment over a grid of inputs

package layout

import (
	"errors"
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	screen := Rect{Width: 100, Height: 50}

	tests := []struct {
		name    string
		spec    Spec
		natural *Size
		want    Rect
	}{
		{
			name: "absolute inside container",
			spec: Spec{X: Abs(10), Y: Abs(5), Width: Abs(20), Height: Abs(10)},
			want: Rect{X: 10, Y: 5, Width: 20, Height: 10},
		},
		{
			name: "relative fractions floor",
			spec: Spec{X: Rel(0.1), Y: Rel(0.2), Width: Rel(0.8), Height: Rel(0.6)},
			want: Rect{X: 10, Y: 10, Width: 80, Height: 30},
		},
		{
			name: "float error does not lose a cell",
			spec: Spec{X: Abs(0), Y: Abs(0), Width: Rel(0.29), Height: Rel(0.5)},
			want: Rect{X: 0, Y: 0, Width: 29, Height: 25},
		},
		{
			name: "auto position centers the resolved size",
			spec: Spec{Width: Abs(50), Height: Abs(20)},
			want: Rect{X: 25, Y: 15, Width: 50, Height: 20},
		},
		{
			name: "auto size caps at ninety percent",
			spec: Spec{},
			want: Rect{X: 5, Y: 2, Width: 90, Height: 45},
		},
		{
			name: "auto size fills the remaining extent after an absolute offset",
			spec: Spec{X: Abs(95), Y: Abs(0)},
			want: Rect{X: 95, Y: 0, Width: 5, Height: 45},
		},
		{
			name:    "auto size uses the natural size",
			spec:    Spec{},
			natural: &Size{Width: 30, Height: 8},
			want:    Rect{X: 35, Y: 21, Width: 30, Height: 8},
		},
		{
			name:    "natural size larger than container is clamped",
			spec:    Spec{},
			natural: &Size{Width: 300, Height: 80},
			want:    Rect{X: 0, Y: 0, Width: 100, Height: 50},
		},
		{
			name: "oversized absolute degrades to filling the container",
			spec: Spec{X: Abs(0), Y: Abs(0), Width: Abs(200), Height: Abs(100)},
			want: Rect{X: 0, Y: 0, Width: 100, Height: 50},
		},
		{
			name: "position past the edge clamps to the edge with zero extent",
			spec: Spec{X: Abs(100), Y: Abs(50), Width: Abs(20), Height: Abs(10)},
			want: Rect{X: 100, Y: 50, Width: 0, Height: 0},
		},
		{
			name: "width shrinks to fit after offset",
			spec: Spec{X: Abs(90), Y: Abs(45), Width: Abs(20), Height: Abs(10)},
			want: Rect{X: 90, Y: 45, Width: 10, Height: 5},
		},
		{
			name: "full relative size",
			spec: Spec{X: Abs(0), Y: Abs(0), Width: Rel(1), Height: Rel(1)},
			want: Rect{X: 0, Y: 0, Width: 100, Height: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(tt.spec, screen, tt.natural)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_Centering(t *testing.T) {
	t.Parallel()

	got := Resolve(Spec{Width: Abs(4), Height: Abs(2)}, Rect{Width: 10, Height: 10}, nil)
	if got.X != 3 || got.Y != 4 {
		t.Errorf("centered origin = (%d, %d), want (3, 4)", got.X, got.Y)
	}
}

func TestResolve_ContainerOrigin(t *testing.T) {
	t.Parallel()

	container := Rect{X: 10, Y: 4, Width: 20, Height: 10}
	got := Resolve(Spec{X: Abs(2), Y: Rel(0.5), Width: Abs(5), Height: Abs(2)}, container, nil)
	want := Rect{X: 12, Y: 9, Width: 5, Height: 2}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolve_RelativeTracksResize(t *testing.T) {
	t.Parallel()

	spec := Spec{X: Abs(0), Y: Abs(0), Width: Rel(0.5), Height: Rel(1)}

	if got := Resolve(spec, Rect{Width: 100, Height: 30}, nil).Width; got != 50 {
		t.Fatalf("width at 100 cols = %d, want 50", got)
	}
	if got := Resolve(spec, Rect{Width: 80, Height: 30}, nil).Width; got != 40 {
		t.Errorf("width at 80 cols = %d, want 40", got)
	}
}

func TestResolver_Ceiling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ceiling float64
		want    int
	}{
		{name: "zero uses default", ceiling: 0, want: 90},
		{name: "custom", ceiling: 0.5, want: 50},
		{name: "full", ceiling: 1, want: 100},
		{name: "out of range uses default", ceiling: 1.5, want: 90},
		{name: "NaN uses default", ceiling: math.NaN(), want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Resolver{Ceiling: tt.ceiling}
			got := r.Resolve(Spec{}, Rect{Width: 100, Height: 10}, nil)
			if got.Width != tt.want {
				t.Errorf("Width = %d, want %d", got.Width, tt.want)
			}
		})
	}
}

func TestResolve_DegenerateContainer(t *testing.T) {
	t.Parallel()

	specs := []Spec{
		{},
		{X: Abs(3), Y: Abs(3), Width: Abs(10), Height: Abs(10)},
		{Width: Rel(0.5), Height: Rel(0.5)},
	}
	for _, c := range []Rect{{}, {Width: -5, Height: -1}, {Width: 1, Height: 0}} {
		for _, s := range specs {
			got := Resolve(s, c, nil)
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("Resolve(%+v, %+v) = %+v, negative extent", s, c, got)
			}
		}
	}
}

func TestResolve_DeterministicAndContained(t *testing.T) {
	t.Parallel()

	dims := []Dim{Auto, Abs(0), Abs(3), Abs(17), Abs(500), Rel(0), Rel(0.33), Rel(0.5), Rel(1)}
	containers := []Rect{
		{Width: 10, Height: 10},
		{X: 5, Y: 2, Width: 80, Height: 24},
		{Width: 1, Height: 1},
	}
	natural := &Size{Width: 7, Height: 3}

	for _, c := range containers {
		for _, x := range dims {
			for _, w := range dims {
				spec := Spec{X: x, Y: x, Width: w, Height: w}
				for _, n := range []*Size{nil, natural} {
					first := Resolve(spec, c, n)
					second := Resolve(spec, c, n)
					if first != second {
						t.Fatalf("Resolve not deterministic: %+v vs %+v", first, second)
					}
					if !c.Contains(first) {
						t.Fatalf("Resolve(%v, %+v) = %+v escapes container", spec, c, first)
					}
				}
			}
		}
	}
}

func TestSpec_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{name: "all auto", spec: Spec{}},
		{name: "valid mix", spec: Spec{X: Abs(0), Y: Rel(0.5), Width: Rel(1), Height: Abs(3)}},
		{name: "negative width", spec: Spec{Width: Abs(-1)}, wantErr: ErrNegativeSize},
		{name: "negative x", spec: Spec{X: Abs(-2)}, wantErr: ErrNegativeSize},
		{name: "fraction above one", spec: Spec{Height: Rel(1.5)}, wantErr: ErrFractionRange},
		{name: "negative fraction", spec: Spec{Y: Rel(-0.5)}, wantErr: ErrFractionRange},
		{name: "NaN fraction", spec: Spec{Width: Rel(math.NaN())}, wantErr: ErrFractionRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	t.Parallel()

	got := Rect{X: 0, Y: 0, Width: 10, Height: 5}.Inset(1)
	want := Rect{X: 1, Y: 1, Width: 8, Height: 3}
	if got != want {
		t.Errorf("Inset(1) = %+v, want %+v", got, want)
	}

	if got := (Rect{Width: 1, Height: 1}).Inset(1); got.Width != 0 || got.Height != 0 {
		t.Errorf("Inset on 1x1 = %+v, want zero extent", got)
	}
}

func TestDim_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dim  Dim
		want string
	}{
		{Auto, "auto"},
		{Abs(12), "12"},
		{Rel(0.5), "50%"},
	}
	for _, tt := range tests {
		if got := tt.dim.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolver_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ceiling float64
		extent  int
		want    int
	}{
		{0, 100, 90},
		{0.5, 81, 40},
		{1, 7, 7},
		{2, 10, 9},
		{0.9, 0, 0},
	}
	for _, tt := range tests {
		if got := (Resolver{Ceiling: tt.ceiling}).Limit(tt.extent); got != tt.want {
			t.Errorf("Resolver{%v}.Limit(%d) = %d, want %d", tt.ceiling, tt.extent, got, tt.want)
		}
	}
}

func TestParseDim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Dim
		wantErr error
	}{
		{"", Auto, nil},
		{"AUTO", Auto, nil},
		{"12", Abs(12), nil},
		{" 50% ", Rel(0.5), nil},
		{"0.25", Rel(0.25), nil},
		{"-3", Dim{}, ErrNegativeSize},
		{"150%", Dim{}, ErrFractionRange},
	}
	for _, tt := range tests {
		got, err := ParseDim(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseDim(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDim(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseDim("wide"); err == nil {
		t.Error("ParseDim(wide) succeeded; want error")
	}
}
