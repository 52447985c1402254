// Package eval evaluates infix arithmetic expressions in a single
// left-to-right scan with two stacks, one for pending operators and one
// for pending values. The grammar is numeric literals, the binary
// operators + - * / ^, parentheses and unary minus; nothing else.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	op "github.com/avdeyev/calckit/internal/operation"
	"github.com/informitas/stack"
)

var (
	ErrInvalidExpression     = errors.New("invalid expression")
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrEmptyExpression       = errors.New("empty expression")
)

// InvalidCharError reports a character outside the expression grammar.
type InvalidCharError struct {
	Char byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character '%c' in expression", e.Char)
}

var binaryOperands = map[byte]op.BinaryOperand{
	'+': op.Add,
	'-': op.Sub,
	'*': op.Mult,
	'/': op.Div,
	'^': op.Pow,
}

// Evaluate computes the value of an infix arithmetic expression. The empty
// string evaluates to 0; any other malformed input is an error, never a
// partial result. Dividing by zero is not an error, the IEEE infinity or
// NaN comes back as the value.
func Evaluate(expr string) (float64, error) {
	if expr == "" {
		return 0, nil
	}

	opers := stack.NewStack[op.Operand]()
	vals := stack.NewStack[float64]()

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case isSpace(c):
			i++

		case isNumeral(c):
			lit := scanNumber(expr[i:])
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: bad numeral %q", ErrInvalidExpression, lit)
			}
			vals.Push(v)
			i += len(lit)

		case c == '-' && isUnaryPosition(expr, i):
			lit := scanNumber(expr[i+1:])
			if lit == "" {
				return 0, fmt.Errorf("%w: unary minus not followed by a numeral", ErrInvalidExpression)
			}
			v, err := strconv.ParseFloat("-"+lit, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: bad numeral %q", ErrInvalidExpression, "-"+lit)
			}
			vals.Push(v)
			i += 1 + len(lit)

		case isOperator(c):
			operand := binaryOperands[c]
			for opers.Size() > 0 {
				top, _ := opers.Top()
				if op.OperationPriority[top] < op.OperationPriority[operand] {
					break
				}
				if err := applyTop(opers, vals); err != nil {
					return 0, err
				}
			}
			opers.Push(operand)
			i++

		case c == '(':
			opers.Push(op.OpenParen)
			i++

		case c == ')':
			for {
				if opers.Size() == 0 {
					return 0, ErrMismatchedParentheses
				}
				top, _ := opers.Top()
				if _, ok := top.(op.OrderOperand); ok {
					opers.Pop()
					break
				}
				if err := applyTop(opers, vals); err != nil {
					return 0, err
				}
			}
			i++

		default:
			return 0, &InvalidCharError{Char: c}
		}
	}

	for opers.Size() > 0 {
		top, _ := opers.Top()
		if _, ok := top.(op.OrderOperand); ok {
			return 0, ErrMismatchedParentheses
		}
		if err := applyTop(opers, vals); err != nil {
			return 0, err
		}
	}

	switch vals.Size() {
	case 0:
		return 0, ErrEmptyExpression
	case 1:
		res, _ := vals.Pop()
		return res, nil
	default:
		return 0, fmt.Errorf("%w: operands left without an operator", ErrInvalidExpression)
	}
}

// applyTop pops one operator and its two operands and pushes the result.
// The later-pushed value is the right operand.
func applyTop(opers *stack.Stack[op.Operand], vals *stack.Stack[float64]) error {
	operand, _ := opers.Pop()
	bin, ok := operand.(op.BinaryOperand)
	if !ok {
		return ErrMismatchedParentheses
	}
	if vals.Size() < 2 {
		return fmt.Errorf("%w: operator '%s' is missing an operand", ErrInvalidExpression, bin.Symbol())
	}
	b, _ := vals.Pop()
	a, _ := vals.Pop()
	res, err := bin.Exec(a, b)
	if err != nil {
		return err
	}
	vals.Push(res)
	return nil
}

// scanNumber takes the maximal run of digits and decimal points from the
// head of s. Validity of the run is strconv's problem, not the scanner's.
func scanNumber(s string) string {
	var n int
	for n < len(s) && isNumeral(s[n]) {
		n++
	}
	return s[:n]
}

// isUnaryPosition reports whether a '-' at index i negates the numeral
// after it: at the very start, right after "(" or right after another
// operator. Anything between, even a space, makes it binary.
func isUnaryPosition(expr string, i int) bool {
	if i == 0 {
		return true
	}
	prev := expr[i-1]
	return prev == '(' || isOperator(prev)
}

func isOperator(c byte) bool {
	_, ok := binaryOperands[c]
	return ok
}

func isNumeral(c byte) bool {
	return c >= '0' && c <= '9' || c == '.'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
