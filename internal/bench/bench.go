// Package bench compares the optimized primitives against naive
// baselines and times the evaluator and calculator hot paths. The
// baselines exist only here, production code always uses mathx.
package bench

import (
	"math/rand"
	"time"

	"github.com/avdeyev/calckit/internal/calculator"
	"github.com/avdeyev/calckit/internal/eval"
	"github.com/avdeyev/calckit/internal/mathx"
)

const (
	WarmupIterations    = 100000
	BenchmarkIterations = 2000000
)

// Result is one row of the comparison table. Baseline is zero when there
// is nothing to compare against.
type Result struct {
	Name      string
	Baseline  time.Duration
	Optimized time.Duration
}

// Improvement is the baseline/optimized speedup factor, 0 when there is
// no baseline.
func (r Result) Improvement() float64 {
	if r.Baseline == 0 || r.Optimized == 0 {
		return 0
	}
	return float64(r.Baseline) / float64(r.Optimized)
}

// PowerNaive multiplies base exp times, O(exp).
func PowerNaive(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	absExp := exp
	if exp < 0 {
		absExp = -exp
	}
	result := 1.0
	for i := 0; i < absExp; i++ {
		result *= base
	}
	if exp < 0 {
		return 1 / result
	}
	return result
}

// SqrtBisect finds the root by bisection, slower to converge than
// Newton-Raphson.
func SqrtBisect(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x == 1 {
		return 1
	}
	low, high := 0.0, x
	if x < 1 {
		high = 1
	}
	var mid float64
	for i := 0; i < 50; i++ {
		mid = (low + high) / 2
		square := mid * mid
		if square > x {
			high = mid
		} else {
			low = mid
		}
		diff := square - x
		if diff < 0 {
			diff = -diff
		}
		if diff < 1e-8 {
			break
		}
	}
	return mid
}

// FactorialNaive matches mathx.Factorial; kept so the factorial row has
// an explicit baseline like the reference harness.
func FactorialNaive(n int64) int64 {
	if n <= 1 {
		return 1
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result
}

var sink float64

// Power times naive O(exp) multiplication against squaring on random
// bases in [1.1, 3.0) and exponents in [5, 12].
func Power() Result {
	gen := rand.New(rand.NewSource(time.Now().UnixNano()))
	bases := make([]float64, BenchmarkIterations)
	exponents := make([]int, BenchmarkIterations)
	for i := range bases {
		bases[i] = 1.1 + gen.Float64()*1.9
		exponents[i] = 5 + gen.Intn(8)
	}

	for i := 0; i < WarmupIterations; i++ {
		sink = PowerNaive(bases[i], exponents[i])
	}
	start := time.Now()
	for i := 0; i < BenchmarkIterations; i++ {
		sink = PowerNaive(bases[i], exponents[i])
	}
	baseline := time.Since(start)

	for i := 0; i < WarmupIterations; i++ {
		sink = mathx.Pow(bases[i], exponents[i])
	}
	start = time.Now()
	for i := 0; i < BenchmarkIterations; i++ {
		sink = mathx.Pow(bases[i], exponents[i])
	}
	optimized := time.Since(start)

	return Result{Name: "Power (Exp. by Sq.)", Baseline: baseline, Optimized: optimized}
}

// Sqrt times bisection against Newton-Raphson on random values in
// [1, 1001).
func Sqrt() Result {
	gen := rand.New(rand.NewSource(time.Now().UnixNano()))
	values := make([]float64, BenchmarkIterations)
	for i := range values {
		values[i] = 1 + gen.Float64()*1000
	}

	for i := 0; i < WarmupIterations; i++ {
		sink = SqrtBisect(values[i])
	}
	start := time.Now()
	for i := 0; i < BenchmarkIterations; i++ {
		sink = SqrtBisect(values[i])
	}
	baseline := time.Since(start)

	for i := 0; i < WarmupIterations; i++ {
		sink = mathx.Sqrt(values[i])
	}
	start = time.Now()
	for i := 0; i < BenchmarkIterations; i++ {
		sink = mathx.Sqrt(values[i])
	}
	optimized := time.Since(start)

	return Result{Name: "Square Root", Baseline: baseline, Optimized: optimized}
}

var intSink int64

// Factorial times the iterative product on n in [10, 20).
func Factorial() Result {
	gen := rand.New(rand.NewSource(time.Now().UnixNano()))
	values := make([]int64, BenchmarkIterations)
	for i := range values {
		values[i] = 10 + gen.Int63n(10)
	}

	for i := 0; i < WarmupIterations; i++ {
		intSink = FactorialNaive(values[i])
	}
	start := time.Now()
	for i := 0; i < BenchmarkIterations; i++ {
		intSink = FactorialNaive(values[i])
	}
	baseline := time.Since(start)

	for i := 0; i < WarmupIterations; i++ {
		intSink = mathx.Factorial(values[i])
	}
	start = time.Now()
	for i := 0; i < BenchmarkIterations; i++ {
		intSink = mathx.Factorial(values[i])
	}
	optimized := time.Since(start)

	return Result{Name: "Factorial", Baseline: baseline, Optimized: optimized}
}

var expressions = []string{
	"3.14+2.71*1.41",
	"(10.5+5.2)*2.0",
	"100.0/3.33-5.5",
	"2.5*2.5+1.5",
	"16.0/4.0+8.0",
}

// Expression times the evaluator over a fixed expression set. No
// baseline, there is no second evaluator to race.
func Expression() Result {
	iterations := BenchmarkIterations / 1000
	for i := 0; i < WarmupIterations/1000; i++ {
		sink, _ = eval.Evaluate(expressions[i%len(expressions)])
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		sink, _ = eval.Evaluate(expressions[i%len(expressions)])
	}
	return Result{Name: "Expression Eval", Optimized: time.Since(start)}
}

// CalculatorChain times a short fluent mutation chain.
func CalculatorChain() Result {
	iterations := BenchmarkIterations / 10000
	run := func() float64 {
		c := calculator.New(10)
		c.AddTo(5).MultiplyBy(2)
		c.DivideBy(3)
		return c.CurrentValue()
	}
	for i := 0; i < WarmupIterations/10000; i++ {
		sink = run()
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		sink = run()
	}
	return Result{Name: "Calculator Class", Optimized: time.Since(start)}
}
