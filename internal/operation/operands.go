package op

import "github.com/avdeyev/calckit/internal/mathx"

type Operand interface {
	Symbol() string
	Name() string
}

type MathOperand interface {
	Operand
	math()
}

type BinaryOperand interface {
	MathOperand
	Exec(a, b float64) (float64, error)
}

type OrderOperand interface {
	Operand
	IsStart() bool
}

// ADD
type add struct{}

func (a add) math()          {}
func (a add) Symbol() string { return "+" }
func (a add) Name() string   { return "add" }

func (ad add) Exec(a, b float64) (float64, error) { return mathx.Add(a, b), nil }

// SUB
type sub struct{}

func (s sub) math()          {}
func (s sub) Symbol() string { return "-" }
func (s sub) Name() string   { return "sub" }

func (s sub) Exec(a, b float64) (float64, error) { return mathx.Subtract(a, b), nil }

// MULT
type mult struct{}

func (m mult) math()          {}
func (m mult) Symbol() string { return "*" }
func (m mult) Name() string   { return "mult" }

func (m mult) Exec(a, b float64) (float64, error) { return mathx.Multiply(a, b), nil }

// DIV
// Division by zero is not an error over float64, the IEEE result
// (infinity or NaN) passes through as a value.
type div struct{}

func (d div) math()          {}
func (d div) Symbol() string { return "/" }
func (d div) Name() string   { return "div" }

func (d div) Exec(a, b float64) (float64, error) { return mathx.Divide(a, b), nil }

// POW
// The right operand is truncated to an integer exponent before squaring.
type pow struct{}

func (p pow) math()          {}
func (p pow) Symbol() string { return "^" }
func (p pow) Name() string   { return "pow" }

func (p pow) Exec(a, b float64) (float64, error) { return mathx.Pow(a, int(b)), nil }

// OPEN PAREN
type openParen struct{}

func (p openParen) Symbol() string { return "(" }
func (p openParen) Name() string   { return "open paren" }
func (p openParen) IsStart() bool  { return true }

// CLOSE PAREN
type closeParen struct{}

func (p closeParen) Symbol() string { return ")" }
func (p closeParen) Name() string   { return "close paren" }
func (p closeParen) IsStart() bool  { return false }
