// ABOUTME: Canvas is an off-screen grid of styled grapheme cells
// ABOUTME: Hosts without a native cell buffer draw here and render whole frames

package canvas

import (
	"strings"
	"sync"

	"github.com/mauromedda/termwindows/pkg/tui/theme"
	"github.com/mauromedda/termwindows/pkg/tui/width"
)

// Cell is one screen cell. A wide grapheme occupies its own cell plus
// continuation cells with Width 0 and empty Text to its right.
type Cell struct {
	Text  string
	Width int
	Style theme.Style
}

var blank = Cell{Text: " ", Width: 1}

// Canvas is a fixed-size cell grid. It is safe for concurrent use.
type Canvas struct {
	mu     sync.Mutex
	width  int
	height int
	cells  []Cell
}

// New returns a blank canvas of the given size. Negative sizes become zero.
func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// Resize changes the dimensions and blanks every cell.
func (c *Canvas) Resize(w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = max(0, w)
	c.height = max(0, h)
	c.cells = make([]Cell, c.width*c.height)
	c.clearLocked()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Canvas) clearLocked() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// PrintAt writes s starting at (row, col) with style st. Text is clipped
// at the canvas edges; a wide grapheme that would cross the right edge
// is dropped. Overwriting half of a wide grapheme blanks the other half.
func (c *Canvas) PrintAt(row, col int, s string, st theme.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if row < 0 || row >= c.height {
		return
	}
	x := col
	for _, cell := range width.Cells(s) {
		if x >= c.width {
			return
		}
		if x < 0 {
			x += cell.Width
			continue
		}
		if x+cell.Width > c.width {
			return
		}
		c.setLocked(row, x, Cell{Text: cell.Text, Width: cell.Width, Style: st})
		for i := 1; i < cell.Width; i++ {
			c.setLocked(row, x+i, Cell{Style: st})
		}
		x += cell.Width
	}
}

// setLocked stores cell at (row, col), repairing any wide grapheme it splits.
func (c *Canvas) setLocked(row, col int, cell Cell) {
	idx := row*c.width + col
	old := c.cells[idx]

	if old.Width == 0 && cell.Width != 0 {
		// Landing on a continuation: blank its leader.
		for j := col - 1; j >= 0; j-- {
			lead := &c.cells[row*c.width+j]
			if lead.Width > 0 {
				*lead = Cell{Text: " ", Width: 1, Style: lead.Style}
				break
			}
			*lead = Cell{Text: " ", Width: 1, Style: lead.Style}
		}
	}
	if old.Width > 1 {
		for j := col + 1; j < col+old.Width && j < c.width; j++ {
			if c.cells[row*c.width+j].Width == 0 {
				c.cells[row*c.width+j] = Cell{Text: " ", Width: 1, Style: c.cells[row*c.width+j].Style}
			}
		}
	}
	c.cells[idx] = cell
}

// Cell returns the cell at (row, col), or a blank cell when out of range.
func (c *Canvas) Cell(row, col int) Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return blank
	}
	return c.cells[row*c.width+col]
}

// Line returns the unstyled text of one row.
func (c *Canvas) Line(row int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if row < 0 || row >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cell := range c.cells[row*c.width : (row+1)*c.width] {
		b.WriteString(cell.Text)
	}
	return b.String()
}

// String returns the unstyled frame, rows separated by newlines.
func (c *Canvas) String() string {
	_, h := c.Size()
	lines := make([]string, h)
	for i := range lines {
		lines[i] = c.Line(i)
	}
	return strings.Join(lines, "\n")
}

// Render returns the styled frame. Adjacent cells sharing a style are
// rendered as one run.
func (c *Canvas) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out strings.Builder
	var run strings.Builder
	for row := 0; row < c.height; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		cur := theme.Style{}
		for _, cell := range c.cells[row*c.width : (row+1)*c.width] {
			if cell.Width == 0 {
				continue
			}
			if cell.Style != cur && run.Len() > 0 {
				out.WriteString(cur.Render(run.String()))
				run.Reset()
			}
			cur = cell.Style
			run.WriteString(cell.Text)
		}
		out.WriteString(cur.Render(run.String()))
		run.Reset()
	}
	return out.String()
}
