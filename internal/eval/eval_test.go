package eval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/avdeyev/calckit/internal/eval"
)

func TestSingleNumber(t *testing.T) {
	compare(t, "42", 42)
	compare(t, "3.25", 3.25)
	compare(t, " 7 ", 7)
}

func TestProcedureOfActions(t *testing.T) {
	compare(t, "2+2*2", 6)
	compare(t, "200/5+1", 41)
	compare(t, "2^3+1", 9)
	compare(t, "2*3^2", 18)
}

func TestLeftAssociativity(t *testing.T) {
	compare(t, "10-3-4", 3)
	compare(t, "100/5/2", 10)
	// same precedence folds left to right, power included
	compare(t, "2^3^2", 64)
}

func TestChangeOrderByParens(t *testing.T) {
	compare(t, "(10.5+5.2)*2.0", 31.4)
	compare(t, "(1+2*3)/7", 1)
	compare(t, "(1-2)*(3+4)", -7)
	compare(t, "((2))", 2)
}

func TestFloatExpressions(t *testing.T) {
	compare(t, "3.14+2.71*1.41", 3.14+2.71*1.41)
	compare(t, "100.0/3.33-5.5", 100.0/3.33-5.5)
}

func TestWhitespaceIgnored(t *testing.T) {
	compare(t, "2 - 2\t+ 2", 2)
	compare(t, " ( 1 + 2 ) * 3 ", 9)
}

func TestUnaryMinus(t *testing.T) {
	compare(t, "-5+3", -2)
	compare(t, "-2.5", -2.5)
	compare(t, "2*-3", -6)
	compare(t, "(-5+3)*2", -4)
	compare(t, "2--3", 5)
	compare(t, "2^-3", 0.125)
}

func TestDivisionByZeroIsAValue(t *testing.T) {
	res, err := eval.Evaluate("1/0")
	if err != nil {
		t.Fatalf("error got '%s'", err)
	}
	if !math.IsInf(res, 1) {
		t.Errorf("1/0 = %v, want +Inf", res)
	}

	res, err = eval.Evaluate("0/0")
	if err != nil {
		t.Fatalf("error got '%s'", err)
	}
	if !math.IsNaN(res) {
		t.Errorf("0/0 = %v, want NaN", res)
	}
}

func TestEmptyInput(t *testing.T) {
	compare(t, "", 0)

	if _, err := eval.Evaluate("   "); !errors.Is(err, eval.ErrEmptyExpression) {
		t.Errorf("blank input error = %v, want ErrEmptyExpression", err)
	}
}

func TestParenErrors(t *testing.T) {
	compareErr(t, "(1+2", eval.ErrMismatchedParentheses)
	compareErr(t, "1+2)", eval.ErrMismatchedParentheses)
	compareErr(t, "((1+2)", eval.ErrMismatchedParentheses)
}

func TestInvalidCharacter(t *testing.T) {
	_, err := eval.Evaluate("1+@2")
	var charErr *eval.InvalidCharError
	if !errors.As(err, &charErr) {
		t.Fatalf("error = %v, want InvalidCharError", err)
	}
	if charErr.Char != '@' {
		t.Errorf("offending char = %q, want '@'", charErr.Char)
	}
}

func TestInvalidExpressions(t *testing.T) {
	compareErr(t, "1++2", eval.ErrInvalidExpression)
	compareErr(t, "1+", eval.ErrInvalidExpression)
	compareErr(t, "*2", eval.ErrInvalidExpression)
	compareErr(t, "1.2.3", eval.ErrInvalidExpression)
	// unary minus must be followed by a numeral
	compareErr(t, "-(5)", eval.ErrInvalidExpression)
	compareErr(t, "- 5", eval.ErrInvalidExpression)
	// orphan operands never combined by an operator
	compareErr(t, "1 2", eval.ErrInvalidExpression)
	compareErr(t, "(1)(2)", eval.ErrInvalidExpression)
}

func TestIdempotence(t *testing.T) {
	const expr = "(10.5+5.2)*2.0-3^2"
	first, err := eval.Evaluate(expr)
	if err != nil {
		t.Fatalf("error got '%s'", err)
	}
	for i := 0; i < 10; i++ {
		again, err := eval.Evaluate(expr)
		if err != nil || again != first {
			t.Fatalf("re-evaluation diverged: %v, %v", again, err)
		}
	}
}

func compare(t *testing.T, expr string, expected float64) {
	t.Helper()
	val, err := eval.Evaluate(expr)
	if err != nil {
		t.Errorf("%q: error got '%s'", expr, err)
		return
	}
	if math.Abs(val-expected) > 1e-9 {
		t.Errorf("%q: value is not '%v', got '%v'", expr, expected, val)
	}
}

func compareErr(t *testing.T, expr string, expected error) {
	t.Helper()
	_, err := eval.Evaluate(expr)
	if !errors.Is(err, expected) {
		t.Errorf("%q: error = %v, want %v", expr, err, expected)
	}
}
