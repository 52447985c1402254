package mathx_test

import (
	"errors"
	"math"
	"testing"

	"github.com/avdeyev/calckit/internal/mathx"
)

func TestElementaryOperations(t *testing.T) {
	if got := mathx.Add(2.5, 0.5); got != 3.0 {
		t.Errorf("Add(2.5, 0.5) = %v", got)
	}
	if got := mathx.Subtract(2, 5); got != -3 {
		t.Errorf("Subtract(2, 5) = %v", got)
	}
	if got := mathx.Multiply(-4, 2.5); got != -10.0 {
		t.Errorf("Multiply(-4, 2.5) = %v", got)
	}
	if got := mathx.Divide(7.0, 2.0); got != 3.5 {
		t.Errorf("Divide(7, 2) = %v", got)
	}
}

func TestDivideFloatByZero(t *testing.T) {
	if got := mathx.Divide(1.0, 0.0); !math.IsInf(got, 1) {
		t.Errorf("Divide(1, 0) = %v, want +Inf", got)
	}
	if got := mathx.Divide(-1.0, 0.0); !math.IsInf(got, -1) {
		t.Errorf("Divide(-1, 0) = %v, want -Inf", got)
	}
	if got := mathx.Divide(0.0, 0.0); !math.IsNaN(got) {
		t.Errorf("Divide(0, 0) = %v, want NaN", got)
	}
}

func TestDivideInt(t *testing.T) {
	got, err := mathx.DivideInt(10, 2)
	if err != nil || got != 5 {
		t.Errorf("DivideInt(10, 2) = %v, %v", got, err)
	}
	if _, err := mathx.DivideInt(10, 0); !errors.Is(err, mathx.ErrDivisionByZero) {
		t.Errorf("DivideInt(10, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestPowMatchesRepeatedMultiplication(t *testing.T) {
	for _, base := range []float64{0.5, 1, 1.5, 2, 3.7} {
		want := 1.0
		for exp := 0; exp <= 16; exp++ {
			got := mathx.Pow(base, exp)
			if math.Abs(got-want) > 1e-9*math.Abs(want) {
				t.Errorf("Pow(%v, %d) = %v, want %v", base, exp, got, want)
			}
			want *= base
		}
	}
}

func TestPowEdges(t *testing.T) {
	if got := mathx.Pow(17.3, 0); got != 1 {
		t.Errorf("Pow(17.3, 0) = %v", got)
	}
	if got := mathx.Pow(17.3, 1); got != 17.3 {
		t.Errorf("Pow(17.3, 1) = %v", got)
	}
	if got := mathx.Pow(2.0, -2); got != 0.25 {
		t.Errorf("Pow(2, -2) = %v, want 0.25", got)
	}
}

func TestSqrt(t *testing.T) {
	for _, x := range []float64{0.25, 2, 16, 144, 10000, 123456.789} {
		got := mathx.Sqrt(x)
		if math.Abs(got*got-x) > 1e-9*x {
			t.Errorf("Sqrt(%v) = %v, square %v", x, got, got*got)
		}
	}
	if got := mathx.Sqrt(0.0); got != 0 {
		t.Errorf("Sqrt(0) = %v", got)
	}
	if got := mathx.Sqrt(1.0); got != 1 {
		t.Errorf("Sqrt(1) = %v", got)
	}
	if got := mathx.Sqrt(-4.0); got != 0 {
		t.Errorf("Sqrt(-4) = %v, want 0", got)
	}
}

func TestSqrtFloat32(t *testing.T) {
	got := mathx.Sqrt(float32(2))
	if math.Abs(float64(got*got)-2) > 1e-5 {
		t.Errorf("Sqrt(float32(2)) = %v", got)
	}
}

func TestFactorial(t *testing.T) {
	for n, want := range map[int64]int64{
		-3: 1,
		0:  1,
		1:  1,
		5:  120,
		10: 3628800,
	} {
		if got := mathx.Factorial(n); got != want {
			t.Errorf("Factorial(%d) = %d, want %d", n, got, want)
		}
	}
}

func BenchmarkPow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = mathx.Pow(1.7, 12)
	}
}

func BenchmarkSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = mathx.Sqrt(1234.5)
	}
}

func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchIntSink = mathx.Factorial(int64(15))
	}
}

var (
	benchSink    float64
	benchIntSink int64
)
