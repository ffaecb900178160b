// Package ui paints the calculator face from calc.State into a render
// buffer. Draw is a pure function of its inputs; it never touches the
// terminal directly.
package ui

import (
	"github.com/lixenwraith/deskcalc/calc"
	"github.com/lixenwraith/deskcalc/render"
	"github.com/lixenwraith/deskcalc/terminal"
)

// Fixed frame dimensions. The whole face is repainted into this grid
// every frame
const (
	Width  = 65
	Height = 20
)

// Calculator body layout
const (
	bodyW = 42
	bodyH = 16

	screenX = 2
	screenY = 1
	screenW = bodyW - 4
	screenH = 3

	keypadX   = 4 // First keypad column
	keypadY   = 5 // First keypad row
	keyPitchX = 9 // Horizontal cell width per keypad column
	keyPitchY = 2 // Vertical rows per keypad row

	tapeX = 43
	tapeW = Width - tapeX
)

// keypadLabels is the fixed 5x4 keypad layout
var keypadLabels = [5][4]string{
	{"C", "/", "*", "-"},
	{"7", "8", "9", "+"},
	{"4", "5", "6", "^"},
	{"1", "2", "3", "="},
	{"0", ".", "OFF", ""},
}

var instructions = [2]string{
	"keys 0-9 . + - * / ^    enter = equals",
	"c or backspace clears   q or off quits",
}

// Draw paints chassis, screen, keypad, instructions, and history tape
func Draw(buf *render.Buffer, st *calc.State, th Theme) {
	root := render.NewRegion(buf)

	drawBody(root, st, th)
	drawKeypad(buf, th)
	drawInstructions(buf, th)
	drawTape(root, st, th)
}

// drawBody draws the chassis frame and the display screen
func drawBody(root render.Region, st *calc.State, th Theme) {
	body := root.Sub(0, 0, bodyW, bodyH)
	body.Box(render.LineDouble, th.Frame)
	body.Text(3, 0, " DESKCALC ", th.Frame, terminal.AttrBold)

	screen := body.Sub(screenX, screenY, screenW, screenH)
	screen.Box(render.LineSingle, th.ScreenBox)

	// Pending operator indicator on the left edge of the screen
	if st.Op != calc.OpNone {
		screen.Text(2, 1, st.Op.String(), th.Operator, terminal.AttrBold)
	}

	// Display text, right-justified inside the screen box
	display := render.Truncate(st.Display, screenW-6)
	screen.Text(screenW-2-len([]rune(display)), 1, display, th.Display, terminal.AttrBold)
}

// drawKeypad draws the 5x4 button grid with fixed pitch
func drawKeypad(buf *render.Buffer, th Theme) {
	for row := range keypadLabels {
		y := keypadY + row*keyPitchY
		for col, label := range keypadLabels[row] {
			if label == "" {
				continue
			}
			fg := th.Key
			if label == "=" || label == "OFF" {
				fg = th.KeyAccent
			}
			buf.Text(keypadX+col*keyPitchX, y, label, fg, terminal.AttrBold)
		}
	}
}

// drawInstructions draws the static help lines below the chassis
func drawInstructions(buf *render.Buffer, th Theme) {
	for i, line := range instructions {
		buf.Text(1, bodyH+1+i, line, th.Instructions, terminal.AttrDim)
	}
}

// drawTape draws the history panel, most recent entry first and
// highlighted against the older ones
func drawTape(root render.Region, st *calc.State, th Theme) {
	tape := root.Sub(tapeX, 0, tapeW, Height)
	tape.Box(render.LineSingle, th.Frame)
	tape.Text(2, 0, " TAPE ", th.TapeTitle, terminal.AttrBold)

	rows := Height - 2 // Inside the border
	for i, e := range st.History {
		if i >= rows {
			break
		}
		fg, attrs := th.TapeOld, terminal.AttrDim
		if i == 0 {
			fg, attrs = th.TapeRecent, terminal.AttrBold
		}
		tape.Text(2, 1+i, render.Truncate(e.String(), tapeW-3), fg, attrs)
	}
}
