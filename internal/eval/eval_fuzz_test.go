package eval_test

import (
	"testing"

	"github.com/avdeyev/calckit/internal/eval"
)

func FuzzEvaluate(f *testing.F) {
	for _, seed := range []string{
		"",
		"3.14+2.71*1.41",
		"(10.5+5.2)*2.0",
		"2^3+1",
		"-5+3",
		"1/0",
		"(1+2",
		"1+@2",
		"2*-3",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, expr string) {
		// any input must come back as a value or an error, never a panic,
		// and the result must be stable across calls
		res, err := eval.Evaluate(expr)
		again, err2 := eval.Evaluate(expr)
		if (err == nil) != (err2 == nil) {
			t.Fatalf("unstable error for %q: %v vs %v", expr, err, err2)
		}
		if err == nil && res != again && res == res && again == again {
			t.Fatalf("unstable result for %q: %v vs %v", expr, res, again)
		}
	})
}
