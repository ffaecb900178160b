package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/deskcalc/terminal"
)

func TestBufferClear(t *testing.T) {
	b := NewBuffer(10, 4)
	b.Text(2, 1, "hello", terminal.RGB{R: 255}, terminal.AttrBold)
	b.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			c := b.At(x, y)
			if c.Rune != ' ' || c.Fg != (terminal.RGB{}) || c.Attrs != terminal.AttrNone {
				t.Fatalf("Expected blank unstyled cell at %d,%d, got %+v", x, y, c)
			}
		}
	}
}

func TestBufferTextClipping(t *testing.T) {
	b := NewBuffer(5, 2)

	// Runs off the right edge: no wrap, no panic
	b.Text(3, 0, "abcdef", terminal.RGB{}, terminal.AttrNone)
	if got := b.Row(0); got != "   ab" {
		t.Errorf("Expected %q, got %q", "   ab", got)
	}
	if got := b.Row(1); got != "     " {
		t.Errorf("Expected next row untouched, got %q", got)
	}

	// Entirely out of bounds writes are silent no-ops
	b.Text(-10, 0, "x", terminal.RGB{}, terminal.AttrNone)
	b.Text(0, 7, "x", terminal.RGB{}, terminal.AttrNone)
	b.SetCell(99, 99, terminal.Cell{Rune: 'x'})
}

func TestBufferTextRight(t *testing.T) {
	b := NewBuffer(10, 1)
	b.TextRight(8, 0, "42", terminal.RGB{}, terminal.AttrNone)

	if got := strings.TrimRight(b.Row(0), " "); got != "       42" {
		t.Errorf("Expected right-justified %q, got %q", "       42", got)
	}
}

func TestBufferFlush(t *testing.T) {
	nb := terminal.NewNullBackend(20, 10)
	if err := nb.Init(); err != nil {
		t.Fatal(err)
	}

	b := NewBuffer(5, 3)
	b.Text(0, 0, "abc", terminal.RGB{R: 1}, terminal.AttrBold)
	b.Flush(nb, 2, 4)

	if c := nb.CellAt(2, 4); c.Rune != 'a' || c.Attrs != terminal.AttrBold {
		t.Errorf("Expected 'a' bold at offset position, got %+v", c)
	}
	if c := nb.CellAt(4, 4); c.Rune != 'c' {
		t.Errorf("Expected 'c' at offset position, got %+v", c)
	}
	if nb.Shows() != 1 {
		t.Errorf("Expected one Show per flush, got %d", nb.Shows())
	}

	// Untouched buffer cells still overwrite: full-frame repaint
	if c := nb.CellAt(6, 6); c.Rune != ' ' {
		t.Errorf("Expected blank cell pushed at 6,6, got %q", c.Rune)
	}
}

func TestRegionSubClipping(t *testing.T) {
	b := NewBuffer(10, 10)
	root := NewRegion(b)

	sub := root.Sub(8, 8, 5, 5)
	if sub.W != 2 || sub.H != 2 {
		t.Errorf("Expected clipped 2x2 region, got %dx%d", sub.W, sub.H)
	}

	neg := root.Sub(-2, -2, 4, 4)
	if neg.X != 0 || neg.Y != 0 || neg.W != 2 || neg.H != 2 {
		t.Errorf("Expected negative origin clipped, got %+v", neg)
	}
}

func TestRegionBox(t *testing.T) {
	b := NewBuffer(6, 4)
	NewRegion(b).Box(LineDouble, terminal.RGB{R: 9})

	if c := b.At(0, 0); c.Rune != '╔' {
		t.Errorf("Expected ╔ corner, got %q", c.Rune)
	}
	if c := b.At(5, 3); c.Rune != '╝' {
		t.Errorf("Expected ╝ corner, got %q", c.Rune)
	}
	if c := b.At(3, 0); c.Rune != '═' {
		t.Errorf("Expected ═ edge, got %q", c.Rune)
	}
	if c := b.At(0, 2); c.Rune != '║' {
		t.Errorf("Expected ║ edge, got %q", c.Rune)
	}
	if c := b.At(2, 2); c.Rune != ' ' {
		t.Errorf("Expected interior untouched, got %q", c.Rune)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"Fits", "abc", 5, "abc"},
		{"Exact", "abc", 3, "abc"},
		{"Truncated", "abcdef", 4, "abc…"},
		{"Single", "abc", 1, "…"},
		{"Zero", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.maxLen); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
