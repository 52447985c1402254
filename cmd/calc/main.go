package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/avdeyev/calckit/internal/eval"
)

func main() {
	flag.Parse()

	// one-shot mode: every argument is an expression
	if flag.NArg() > 0 {
		code := 0
		for _, expr := range flag.Args() {
			res, err := eval.Evaluate(expr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", expr, err)
				code = 1
				continue
			}
			fmt.Println(strconv.FormatFloat(res, 'g', -1, 64))
		}
		os.Exit(code)
	}

	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "exit" || line == "quit" {
			return
		}
		res, err := eval.Evaluate(line)
		if err != nil {
			fmt.Println("error:", err)
		} else {
			fmt.Println(strconv.FormatFloat(res, 'g', -1, 64))
		}
		fmt.Print("> ")
	}
}
