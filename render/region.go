package render

import (
	"github.com/lixenwraith/deskcalc/terminal"
)

// Region represents a rectangular area within a buffer.
// All coordinates are relative to the region's origin
type Region struct {
	buf  *Buffer
	X, Y int // Absolute position in the buffer
	W, H int // Region dimensions
}

// NewRegion returns a region covering the whole buffer
func NewRegion(buf *Buffer) Region {
	return Region{buf: buf, W: buf.Width(), H: buf.Height()}
}

// Sub returns a nested region relative to the parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{buf: r.buf, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Cell sets a single cell with bounds checking against the region
func (r Region) Cell(x, y int, ch rune, fg terminal.RGB, attrs terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.buf.SetCell(r.X+x, r.Y+y, terminal.Cell{Rune: ch, Fg: fg, Attrs: attrs})
}

// Text writes s inside the region, clipped to the region's right edge
func (r Region) Text(x, y int, s string, fg terminal.RGB, attrs terminal.Attr) {
	for i, ch := range []rune(s) {
		r.Cell(x+i, y, ch, fg, attrs)
	}
}

// Fill fills the region with blanks in the given style
func (r Region) Fill(fg terminal.RGB, attrs terminal.Attr) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', fg, attrs)
		}
	}
}
