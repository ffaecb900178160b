package render

import (
	"github.com/lixenwraith/deskcalc/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle LineType = iota // ┌─┐│└┘
	LineDouble                 // ╔═╗║╚╝
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle: {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble: {'╔', '═', '╗', '║', '╚', '╝'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a border around the region edge
func (r Region) Box(line LineType, fg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	// Corners
	r.Cell(0, 0, chars[boxTL], fg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, terminal.AttrNone)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, terminal.AttrNone)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, terminal.AttrNone)
	}
}
