package calc

import (
	"math"
	"strconv"
	"strings"
)

// ErrDisplay is the division-by-zero sentinel, shown verbatim.
// It is data, not an error: the next input recovers normally
const ErrDisplay = "Err"

// State is the calculator state machine. Owned by the single app
// goroutine; no locking
type State struct {
	Display     string
	Accumulator float64
	Op          Operator
	NewEntry    bool
	History     []Entry // Most recent first
}

// New returns the power-on state
func New() *State {
	return &State{
		Display:  "0",
		NewEntry: true,
		History:  make([]Entry, 0, MaxHistory),
	}
}

// HandleKey processes one logical key and reports whether to quit.
// Classification order: digit/point, clear, equals, off, empty,
// operator; anything else is ignored
func (s *State) HandleKey(key rune) (quit bool) {
	switch {
	case key >= '0' && key <= '9' || key == '.':
		s.enterDigit(key)
	case key == 'C':
		s.Reset()
	case key == '=':
		if s.Op != OpNone {
			s.calculate()
		}
	case key == 'O' || key == 'Q':
		// OFF
		return true
	case key == 0:
		// Ignorable input
	default:
		if op, ok := ParseOperator(key); ok {
			// Fold the pending operation first so chained entry works
			// (2 + 3 + 4). While NewEntry is set, a second operator
			// only swaps the pending one without computing
			if s.Op != OpNone && !s.NewEntry {
				s.calculate()
			}
			s.Accumulator = parseNumber(s.Display)
			s.Op = op
			s.NewEntry = true
		}
	}
	return false
}

// Reset returns to the power-on display. The tape is kept
func (s *State) Reset() {
	s.Display = "0"
	s.Accumulator = 0
	s.Op = OpNone
	s.NewEntry = true
}

func (s *State) enterDigit(key rune) {
	if s.NewEntry {
		s.Display = string(key)
		s.NewEntry = false
		return
	}
	if key == '.' && strings.ContainsRune(s.Display, '.') {
		return
	}
	s.Display += string(key)
}

// calculate folds the pending operation into the display. Numeric
// results are recorded on the tape; Err is not
func (s *State) calculate() {
	if s.Op == OpNone {
		return
	}
	right := parseNumber(s.Display)
	result := apply(s.Op, s.Accumulator, right)
	if result != ErrDisplay {
		s.pushEntry(Entry{Left: s.Accumulator, Op: s.Op, Right: right, Result: result})
	}
	s.Display = result
	s.Accumulator = parseNumber(result) // 0 after Err
	s.NewEntry = true
	s.Op = OpNone
}

// apply computes left op right and returns the formatted display text
func apply(op Operator, left, right float64) string {
	switch op {
	case OpAdd:
		return FormatNumber(left + right)
	case OpSub:
		return FormatNumber(left - right)
	case OpMul:
		return FormatNumber(left * right)
	case OpDiv:
		if right == 0 {
			return ErrDisplay
		}
		return FormatNumber(left / right)
	case OpPow:
		return FormatNumber(math.Pow(left, right))
	}
	return FormatNumber(right)
}

// pushEntry prepends e and truncates the tape at MaxHistory
func (s *State) pushEntry(e Entry) {
	s.History = append(s.History, Entry{})
	copy(s.History[1:], s.History)
	s.History[0] = e
	if len(s.History) > MaxHistory {
		s.History = s.History[:MaxHistory]
	}
}

// parseNumber parses display text, 0 if unparsable (including ErrDisplay)
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatNumber renders mathematically integral values without decimals,
// everything else in compact general form
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
