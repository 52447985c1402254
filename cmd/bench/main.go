package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/avdeyev/calckit/internal/bench"
)

func main() {
	fmt.Println("Focused Calculator Performance Benchmark")
	fmt.Println("======================================")
	fmt.Println("Highlighting operations with clear optimization benefits")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Operation\tStd (ms)\tOpt (ms)\tImprovement")

	for _, r := range []bench.Result{
		bench.Power(),
		bench.Sqrt(),
		bench.Factorial(),
		bench.Expression(),
		bench.CalculatorChain(),
	} {
		baseline := "N/A"
		improvement := "N/A"
		if r.Baseline > 0 {
			baseline = fmt.Sprintf("%.3f", float64(r.Baseline.Nanoseconds())/1e6)
			improvement = fmt.Sprintf("%.2fx", r.Improvement())
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%s\n",
			r.Name, baseline, float64(r.Optimized.Nanoseconds())/1e6, improvement)
	}
	w.Flush()
}
