// ABOUTME: Tests for built-in themes and border glyph sets
// ABOUTME: Verifies names, border resolution, and copy-on-lookup semantics

package theme

import "testing"

func TestBuiltinThemes_AllExist(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Errorf("Builtin(%q) returned nil", name)
			continue
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
		want, err := BorderByName(th.BorderName)
		if err != nil {
			t.Errorf("Builtin(%q) border: %v", name, err)
			continue
		}
		if th.Border != want {
			t.Errorf("Builtin(%q).Border does not match %q glyphs", name, th.BorderName)
		}
	}
}

func TestBuiltinThemes_UnknownReturnsNil(t *testing.T) {
	t.Parallel()
	if th := Builtin("nonexistent"); th != nil {
		t.Errorf("Builtin(nonexistent) should return nil, got %v", th)
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	t.Parallel()
	a := Builtin("dark")
	a.Palette.Title.Fg = "1"
	if b := Builtin("dark"); b.Palette.Title.Fg == "1" {
		t.Error("mutating a Builtin result leaked into the registry")
	}
}

func TestBorderByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		wantTL   string
		wantHorz string
		wantErr  bool
	}{
		{name: "ascii", wantTL: "+", wantHorz: "-"},
		{name: "rounded", wantTL: "╭", wantHorz: "─"},
		{name: "double", wantTL: "╔", wantHorz: "═"},
		{name: "sparkly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := BorderByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("BorderByName(%q): %v", tt.name, err)
			}
			if b.TopLeft != tt.wantTL || b.Top != tt.wantHorz {
				t.Errorf("glyphs = %q %q; want %q %q", b.TopLeft, b.Top, tt.wantTL, tt.wantHorz)
			}
		})
	}
}

func TestStyle_Render(t *testing.T) {
	t.Parallel()
	if got := (Style{}).Render("x"); got != "x" {
		t.Errorf("zero style Render = %q; want %q", got, "x")
	}
	if !(Style{}).IsZero() || (Style{Bold: true}).IsZero() {
		t.Error("IsZero mismatch")
	}
}
