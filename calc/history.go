package calc

import "fmt"

// MaxHistory bounds the tape; oldest entries are evicted first
const MaxHistory = 12

// Entry is one completed operation on the history tape.
// Entries are immutable once recorded
type Entry struct {
	Left   float64
	Op     Operator
	Right  float64
	Result string
}

// String formats the entry as shown on the tape
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(e.Left), e.Op, FormatNumber(e.Right), e.Result)
}
