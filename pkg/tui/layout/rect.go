// ABOUTME: Rect and Size value types for resolved cell geometry
// ABOUTME: Inset shrinks a rect on all sides, never producing negative extents

package layout

import "fmt"

// Rect is a resolved rectangle in terminal cells. Width and Height are never negative.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a width/height pair, used for a window's natural (content-driven) size.
type Size struct {
	Width  int
	Height int
}

// Right returns the first column past the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Size returns the rect extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Inset returns r shrunk by n cells on every side. Extents clamp at zero.
func (r Rect) Inset(n int) Rect {
	out := Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  max(0, r.Width-2*n),
		Height: max(0, r.Height-2*n),
	}
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
