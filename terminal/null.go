package terminal

// NullBackend is an in-memory Backend for tests: a plain cell grid plus
// a synthetic event queue
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorVisible bool
	clears        int
	shows         int
	beeps         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
	return nil
}

func (b *NullBackend) Fini() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, c Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = c
	}
}

func (b *NullBackend) Clear() {
	b.clears++
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{}
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) SetCursorVisible(visible bool) {
	b.cursorVisible = visible
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
		// Queue full, drop
	}
}

func (b *NullBackend) Beep() {
	b.beeps++
}

// CellAt returns the staged cell at x,y for assertions
func (b *NullBackend) CellAt(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return Cell{}
}

// Shows returns how many frames were shown
func (b *NullBackend) Shows() int { return b.shows }

// Clears returns how many full-screen clears happened
func (b *NullBackend) Clears() int { return b.clears }
