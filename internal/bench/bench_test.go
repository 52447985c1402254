package bench_test

import (
	"math"
	"testing"

	"github.com/avdeyev/calckit/internal/bench"
	"github.com/avdeyev/calckit/internal/mathx"
)

func TestBaselinesAgreeWithOptimized(t *testing.T) {
	for exp := -3; exp <= 12; exp++ {
		naive := bench.PowerNaive(1.7, exp)
		fast := mathx.Pow(1.7, exp)
		if math.Abs(naive-fast) > 1e-9*math.Abs(naive) {
			t.Errorf("exp %d: naive %v vs optimized %v", exp, naive, fast)
		}
	}

	for _, x := range []float64{0.25, 2, 16, 1000} {
		if got := bench.SqrtBisect(x); math.Abs(got*got-x) > 1e-6 {
			t.Errorf("SqrtBisect(%v) = %v", x, got)
		}
	}

	if got := bench.FactorialNaive(10); got != mathx.Factorial(int64(10)) {
		t.Errorf("FactorialNaive(10) = %d", got)
	}
}
