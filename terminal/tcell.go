package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellBackend implements Backend on a tcell.Screen. tcell owns the
// termios raw/echo settings and decodes escape sequences into events;
// everything above sees only Cell writes and decoded Events.
type tcellBackend struct {
	screen tcell.Screen

	mu        sync.Mutex
	finalized bool
}

// New creates the default tcell-backed terminal backend
func New() (Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellBackend{screen: screen}, nil
}

func (b *tcellBackend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.HideCursor()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal. Safe to call multiple times, including
// from a panic handler racing a deferred cleanup
func (b *tcellBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finalized {
		return
	}
	b.finalized = true
	b.screen.Fini()
}

func (b *tcellBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *tcellBackend) SetCell(x, y int, c Cell) {
	b.screen.SetContent(x, y, c.Rune, nil, convertStyle(c))
}

func (b *tcellBackend) Clear() {
	b.screen.Clear()
}

func (b *tcellBackend) Show() {
	b.screen.Show()
}

func (b *tcellBackend) SetCursorVisible(visible bool) {
	if visible {
		b.screen.ShowCursor(0, 0)
	} else {
		b.screen.HideCursor()
	}
}

// PollEvent blocks until the next decoded input event. Non-actionable
// event classes (mouse, paste, focus) are consumed and skipped
func (b *tcellBackend) PollEvent() Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			return Event{
				Type: EventKey,
				Key:  convertKey(e.Key()),
				Rune: e.Rune(),
			}
		case *tcell.EventResize:
			w, h := e.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		}
	}
}

func (b *tcellBackend) PostEvent(ev Event) {
	if ev.Type != EventKey {
		return
	}
	tev := tcell.NewEventKey(convertToTcellKey(ev.Key), ev.Rune, tcell.ModNone)
	_ = b.screen.PostEvent(tev) // best-effort; event queue may be full
}

func (b *tcellBackend) Beep() {
	_ = b.screen.Beep() // best-effort; terminal may not support bell
}

// convertStyle maps a Cell to tcell.Style. Zero RGB stays the terminal
// default color
func convertStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault
	if !c.Fg.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// convertKey maps tcell keys to the local Key set. Keys with no local
// meaning collapse to KeyNone
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlJ:
		// Bare line feed, same logical key as Enter
		return KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}

// convertToTcellKey maps a local Key back to tcell for PostEvent
func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEnter:
		return tcell.KeyEnter
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyEscape:
		return tcell.KeyEscape
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	case KeyCtrlC:
		return tcell.KeyCtrlC
	default:
		return tcell.KeyRune
	}
}
