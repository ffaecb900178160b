// Package app owns the calculator's Running→Quit loop: draw a frame,
// block on input, feed the state machine, repeat.
package app

import (
	"log"

	"github.com/lixenwraith/deskcalc/audio"
	"github.com/lixenwraith/deskcalc/calc"
	"github.com/lixenwraith/deskcalc/render"
	"github.com/lixenwraith/deskcalc/terminal"
	"github.com/lixenwraith/deskcalc/ui"
)

// App ties backend, buffer, state, and sound together. All fields are
// owned by the goroutine running Run; the only blocking call is
// PollEvent
type App struct {
	term  terminal.Backend
	buf   *render.Buffer
	state *calc.State
	sound *audio.Feedback
	theme ui.Theme

	// Chassis position, re-centered on resize
	offsetX int
	offsetY int
}

// New wires an App over an initialized backend
func New(term terminal.Backend, sound *audio.Feedback, theme ui.Theme) *App {
	return &App{
		term:  term,
		buf:   render.NewBuffer(ui.Width, ui.Height),
		state: calc.New(),
		sound: sound,
		theme: theme,
	}
}

// State exposes the calculator state for tests and debug logging
func (a *App) State() *calc.State {
	return a.state
}

// Run blocks until the user quits or the backend closes
func (a *App) Run() error {
	a.layout(a.term.Size())
	for {
		a.draw()

		ev := a.term.PollEvent()
		switch ev.Type {
		case terminal.EventClosed:
			return nil
		case terminal.EventResize:
			a.layout(ev.Width, ev.Height)
		case terminal.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey reports true when the loop should quit
func (a *App) handleKey(ev terminal.Event) bool {
	// Quit keys break the loop before any classification
	if ev.Key == terminal.KeyCtrlC {
		return true
	}
	if ev.Key == terminal.KeyRune && (ev.Rune == 'q' || ev.Rune == 'Q') {
		return true
	}

	key, ok := calc.MapEvent(ev)
	if !ok {
		// Consumed and discarded, same as the raw escape groups
		return false
	}

	before := a.state.Display
	quit := a.state.HandleKey(key)
	log.Printf("key %q display=%q op=%q", key, a.state.Display, a.state.Op)

	if a.state.Display == calc.ErrDisplay && before != calc.ErrDisplay {
		a.sound.ErrorTone()
	} else {
		a.sound.KeyClick()
	}
	return quit
}

// layout centers the fixed chassis when the terminal is larger and
// clears whatever the previous layout left behind
func (a *App) layout(w, h int) {
	a.offsetX = 0
	a.offsetY = 0
	if w > ui.Width {
		a.offsetX = (w - ui.Width) / 2
	}
	if h > ui.Height {
		a.offsetY = (h - ui.Height) / 2
	}
	a.term.Clear()
}

// draw repaints the whole face and flushes it
func (a *App) draw() {
	a.buf.Clear()
	ui.Draw(a.buf, a.state, a.theme)
	a.buf.Flush(a.term, a.offsetX, a.offsetY)
}
