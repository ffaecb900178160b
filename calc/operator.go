package calc

// Operator is a pending binary operation
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

// ParseOperator maps an operator key to its Operator
func ParseOperator(key rune) (Operator, bool) {
	switch key {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	case '^':
		return OpPow, true
	}
	return OpNone, false
}

// String returns the display symbol, empty for OpNone
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return ""
}
