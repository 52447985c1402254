// Package mathx holds the arithmetic primitives the rest of the module is
// built on: the four elementary operations over any numeric type, power by
// repeated squaring, a Newton-Raphson square root and an iterative factorial.
package mathx

import "errors"

var ErrDivisionByZero = errors.New("division by zero")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

func Add[T Number](a, b T) T { return a + b }

func Subtract[T Number](a, b T) T { return a - b }

func Multiply[T Number](a, b T) T { return a * b }

// Divide follows IEEE-754: dividing by zero yields +Inf, -Inf or NaN
// depending on the sign of the dividend. It never fails.
func Divide[T Float](a, b T) T { return a / b }

// DivideInt is integer division. A zero divisor is reported as
// ErrDivisionByZero instead of a runtime panic.
func DivideInt[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Pow raises base to an integer power by repeated squaring, O(log exp)
// multiplications. A negative exponent yields the reciprocal of the
// positive power.
func Pow[T Float](base T, exp int) T {
	if exp < 0 {
		return 1 / Pow(base, -exp)
	}
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Sqrt computes the square root by Newton-Raphson iteration starting from
// x/2. Convergence is reached when successive guesses differ by less than
// a tolerance scaled to the type's precision; the loop is capped at 20
// rounds so it always terminates. Nonpositive input yields 0.
func Sqrt[T Float](x T) T {
	if x <= 0 {
		return 0
	}
	if x == 1 {
		return 1
	}
	guess := x / 2
	tolerance := machineEpsilon[T]() * 100
	for i := 0; i < 20; i++ {
		next := (guess + x/guess) / 2
		diff := next - guess
		if diff < 0 {
			diff = -diff
		}
		if diff < tolerance {
			return next
		}
		guess = next
	}
	return guess
}

func machineEpsilon[T Float]() T {
	eps := T(1)
	for T(1)+eps/2 > 1 {
		eps /= 2
	}
	return eps
}

// Factorial is the iterative product 2..n; n <= 1 yields 1. There is no
// overflow check, large n wraps like any other integer multiplication.
func Factorial[T Integer](n T) T {
	result := T(1)
	for i := T(2); i <= n; i++ {
		result *= i
	}
	return result
}
