package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Backend provides low-level terminal access. Implementations own raw
// mode, echo suppression, and escape-sequence decoding; callers only
// ever see decoded Events.
type Backend interface {
	// Init enters raw mode and the alternate screen, hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// SetCell stages a single cell. Out-of-bounds writes are ignored
	SetCell(x, y int, c Cell)

	// Clear erases the whole screen
	Clear()

	// Show synchronizes staged cells with the display
	Show()

	// SetCursorVisible shows/hides the cursor
	SetCursorVisible(visible bool)

	// PollEvent blocks until the next input event
	PollEvent() Event

	// PostEvent injects a synthetic event. The tcell backend supports
	// key events only; the null backend accepts any event type
	PostEvent(Event)

	// Beep sounds the terminal bell
	Beep()
}
