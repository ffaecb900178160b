package ui

import (
	"github.com/lixenwraith/deskcalc/terminal"
)

// Theme holds the colors for the calculator chassis and tape
type Theme struct {
	Frame        terminal.RGB // Chassis and tape borders
	ScreenBox    terminal.RGB
	Display      terminal.RGB
	Operator     terminal.RGB // Pending-operator indicator
	Key          terminal.RGB
	KeyAccent    terminal.RGB // "=" and OFF
	Instructions terminal.RGB
	TapeTitle    terminal.RGB
	TapeRecent   terminal.RGB
	TapeOld      terminal.RGB
}

// DefaultTheme is the colored calculator face
func DefaultTheme() Theme {
	return Theme{
		Frame:        terminal.RGB{R: 95, G: 175, B: 255},
		ScreenBox:    terminal.RGB{R: 135, G: 135, B: 135},
		Display:      terminal.RGB{R: 175, G: 255, B: 135},
		Operator:     terminal.RGB{R: 255, G: 215, B: 95},
		Key:          terminal.RGB{R: 215, G: 215, B: 215},
		KeyAccent:    terminal.RGB{R: 255, G: 175, B: 95},
		Instructions: terminal.RGB{R: 135, G: 135, B: 135},
		TapeTitle:    terminal.RGB{R: 95, G: 175, B: 255},
		TapeRecent:   terminal.RGB{R: 255, G: 255, B: 215},
		TapeOld:      terminal.RGB{R: 135, G: 135, B: 135},
	}
}

// MonoTheme renders everything in the terminal default color
func MonoTheme() Theme {
	return Theme{}
}
