package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/deskcalc/terminal"
)

// Buffer is a fixed-size cell grid, fully rewritten every frame.
// No diffing: every flush pushes every cell
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		cells:  make([]terminal.Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns buffer width
func (b *Buffer) Width() int { return b.width }

// Height returns buffer height
func (b *Buffer) Height() int { return b.height }

// Clear resets all cells to blank space with no style using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Rune: ' '}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in grid bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetCell writes one cell, silently clipping out-of-bounds writes
func (b *Buffer) SetCell(x, y int, c terminal.Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// At returns the cell at x,y, or a blank cell outside the grid
func (b *Buffer) At(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Text writes s left to right starting at x,y. No wrapping; cells that
// fall outside the grid are clipped. Wide runes advance by display width
func (b *Buffer) Text(x, y int, s string, fg terminal.RGB, attrs terminal.Attr) {
	for _, r := range s {
		b.SetCell(x, y, terminal.Cell{Rune: r, Fg: fg, Attrs: attrs})
		x += runewidth.RuneWidth(r)
	}
}

// TextRight writes s right-justified so its last cell lands on column right
func (b *Buffer) TextRight(right, y int, s string, fg terminal.RGB, attrs terminal.Attr) {
	b.Text(right-runewidth.StringWidth(s)+1, y, s, fg, attrs)
}

// Row returns the visible text of row y, for assertions
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		r := b.cells[y*b.width+x].Rune
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
	}
	return string(runes)
}

// Flush pushes every cell to the backend and shows the frame.
// offsetX/offsetY position the grid on the physical screen
func (b *Buffer) Flush(t terminal.Backend, offsetX, offsetY int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			t.SetCell(offsetX+x, offsetY+y, b.cells[y*b.width+x])
		}
	}
	t.Show()
}
