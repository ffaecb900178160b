package terminal

// EventType identifies the type of terminal event
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventClosed signals the backend shut down underneath the poller
	EventClosed
)

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Regular character (use the Rune field)
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event represents a decoded terminal event
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width  int
	Height int
}
