package op

var (
	_           Operand
	OpenParen   = openParen{}
	ClosedParen = closeParen{}
	Add         = add{}
	Sub         = sub{}
	Mult        = mult{}
	Div         = div{}
	Pow         = pow{}
)

var Operands = []Operand{OpenParen, ClosedParen, Add, Sub, Mult, Div, Pow}

// OperationPriority ranks operators for the evaluator: higher binds
// tighter. Parens carry priority 0 so a pending "(" never gets popped by
// an incoming operator.
var OperationPriority = map[Operand]int{
	OpenParen:   0,
	ClosedParen: 0,
	Add:         1,
	Sub:         1,
	Mult:        2,
	Div:         2,
	Pow:         3,
}

func HaveOperand(symbol string) bool {
	for _, o := range Operands {
		if o.Symbol() == symbol {
			return true
		}
	}
	return false
}
