package calc

import (
	"unicode"

	"github.com/lixenwraith/deskcalc/terminal"
)

// MapEvent maps a decoded terminal event to a logical calculator key.
// ok is false for non-actionable input: escape, arrows, and anything
// else the original raw loop would have consumed and discarded
func MapEvent(ev terminal.Event) (key rune, ok bool) {
	if ev.Type != terminal.EventKey {
		return 0, false
	}
	switch ev.Key {
	case terminal.KeyEnter:
		return '=', true
	case terminal.KeyBackspace, terminal.KeyDelete:
		return 'C', true
	case terminal.KeyRune:
		return unicode.ToUpper(ev.Rune), true
	}
	return 0, false
}
