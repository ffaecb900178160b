package ui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/deskcalc/calc"
	"github.com/lixenwraith/deskcalc/render"
)

func drawState(st *calc.State) *render.Buffer {
	buf := render.NewBuffer(Width, Height)
	Draw(buf, st, DefaultTheme())
	return buf
}

func TestDrawChassis(t *testing.T) {
	buf := drawState(calc.New())

	if c := buf.At(0, 0); c.Rune != '╔' {
		t.Errorf("Expected chassis corner ╔ at origin, got %q", c.Rune)
	}
	if c := buf.At(bodyW-1, bodyH-1); c.Rune != '╝' {
		t.Errorf("Expected chassis corner ╝, got %q", c.Rune)
	}
	if !strings.Contains(buf.Row(0), "DESKCALC") {
		t.Errorf("Expected title on top edge, got %q", buf.Row(0))
	}
}

func TestDrawDisplayRightJustified(t *testing.T) {
	st := calc.New()
	for _, k := range "123" {
		st.HandleKey(k)
	}
	buf := drawState(st)

	row := buf.Row(screenY + 1)
	if !strings.Contains(row, "123") {
		t.Fatalf("Expected display text in screen row, got %q", row)
	}
	// Right-justified: the last digit sits at the fixed right edge of
	// the screen box interior
	last := screenX + screenW - 3
	for i, want := range "123" {
		if c := buf.At(last-2+i, screenY+1); c.Rune != want {
			t.Errorf("Expected %q at column %d, got %q", want, last-2+i, c.Rune)
		}
	}
}

func TestDrawOperatorIndicator(t *testing.T) {
	st := calc.New()
	for _, k := range "12+" {
		st.HandleKey(k)
	}
	buf := drawState(st)

	if c := buf.At(screenX+2, screenY+1); c.Rune != '+' {
		t.Errorf("Expected pending + indicator, got %q", c.Rune)
	}

	// No indicator without a pending operator
	buf = drawState(calc.New())
	if c := buf.At(screenX+2, screenY+1); c.Rune != ' ' {
		t.Errorf("Expected blank indicator, got %q", c.Rune)
	}
}

func TestDrawKeypad(t *testing.T) {
	buf := drawState(calc.New())

	for row := range keypadLabels {
		y := keypadY + row*keyPitchY
		line := []rune(buf.Row(y))
		for col, label := range keypadLabels[row] {
			if label == "" {
				continue
			}
			x := keypadX + col*keyPitchX
			if got := string(line[x : x+len(label)]); got != label {
				t.Errorf("Expected keypad label %q at %d,%d, got %q", label, x, y, got)
			}
		}
	}
}

func TestDrawInstructions(t *testing.T) {
	buf := drawState(calc.New())

	if !strings.Contains(buf.Row(bodyH+1), "enter = equals") {
		t.Errorf("Expected first instruction line, got %q", buf.Row(bodyH+1))
	}
	if !strings.Contains(buf.Row(bodyH+2), "off quits") {
		t.Errorf("Expected second instruction line, got %q", buf.Row(bodyH+2))
	}
}

func TestDrawTape(t *testing.T) {
	st := calc.New()
	for _, k := range "2+3=" {
		st.HandleKey(k)
	}
	for _, k := range "5+4=" {
		st.HandleKey(k)
	}
	buf := drawState(st)

	if !strings.Contains(buf.Row(1), "5 + 4 = 9") {
		t.Errorf("Expected most recent entry on first tape row, got %q", buf.Row(1))
	}
	if !strings.Contains(buf.Row(2), "2 + 3 = 5") {
		t.Errorf("Expected older entry on second tape row, got %q", buf.Row(2))
	}

	// Most recent entry styled distinctly from older ones
	recent := buf.At(tapeX+2, 1)
	old := buf.At(tapeX+2, 2)
	if recent.Attrs == old.Attrs && recent.Fg == old.Fg {
		t.Error("Expected recent tape entry styled differently from older entries")
	}
}

func TestDrawTapeOverflowClipped(t *testing.T) {
	st := calc.New()
	for i := 0; i < calc.MaxHistory; i++ {
		for _, k := range "1+1=" {
			st.HandleKey(k)
		}
	}

	buf := drawState(st)

	// All 12 entries fit the panel; the bottom border survives
	if c := buf.At(tapeX, Height-1); c.Rune != '└' {
		t.Errorf("Expected tape bottom border intact, got %q", c.Rune)
	}
}

func TestDrawErrDisplay(t *testing.T) {
	st := calc.New()
	for _, k := range "9/0=" {
		st.HandleKey(k)
	}
	buf := drawState(st)

	if !strings.Contains(buf.Row(screenY+1), "Err") {
		t.Errorf("Expected Err on the display, got %q", buf.Row(screenY+1))
	}
}

func TestMonoThemeUsesDefaultColors(t *testing.T) {
	buf := render.NewBuffer(Width, Height)
	Draw(buf, calc.New(), MonoTheme())

	if c := buf.At(0, 0); !c.Fg.IsDefault() {
		t.Errorf("Expected default color frame in mono theme, got %+v", c.Fg)
	}
}

func TestDrawStaysInBounds(t *testing.T) {
	// Drawing into an undersized buffer clips instead of panicking
	buf := render.NewBuffer(30, 10)
	Draw(buf, calc.New(), DefaultTheme())
}

func TestLayoutConstants(t *testing.T) {
	if keypadX+3*keyPitchX+len("OFF") >= bodyW {
		t.Error("Keypad must fit inside the chassis")
	}
	if keypadY+4*keyPitchY >= bodyH-1 {
		t.Error("Last keypad row must sit above the chassis border")
	}
	if tapeX+tapeW != Width {
		t.Error("Tape panel must end at the grid edge")
	}
}
