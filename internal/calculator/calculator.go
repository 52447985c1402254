// Package calculator is a stateful wrapper over the arithmetic
// primitives: a current value plus one memory register, with mutators
// that return the calculator so calls chain.
package calculator

import (
	"errors"

	"github.com/avdeyev/calckit/internal/mathx"
)

var ErrReciprocalOfZero = errors.New("reciprocal of zero is undefined")

// Calculator is not safe for concurrent mutation; give each goroutine
// its own instance or synchronize outside.
type Calculator struct {
	current float64
	memory  float64
}

func New(initial float64) *Calculator {
	return &Calculator{current: initial}
}

func (c *Calculator) CurrentValue() float64 { return c.current }

func (c *Calculator) Memory() float64 { return c.memory }

func (c *Calculator) SetValue(v float64) *Calculator {
	c.current = v
	return c
}

func (c *Calculator) AddTo(v float64) *Calculator {
	c.current = mathx.Add(c.current, v)
	return c
}

func (c *Calculator) SubtractFrom(v float64) *Calculator {
	c.current = mathx.Subtract(c.current, v)
	return c
}

func (c *Calculator) MultiplyBy(v float64) *Calculator {
	c.current = mathx.Multiply(c.current, v)
	return c
}

// DivideBy rejects a zero divisor; the calculator surface treats /0 as a
// user error rather than letting the IEEE infinity through.
func (c *Calculator) DivideBy(v float64) (*Calculator, error) {
	if v == 0 {
		return c, mathx.ErrDivisionByZero
	}
	c.current = mathx.Divide(c.current, v)
	return c, nil
}

func (c *Calculator) Sqrt() *Calculator {
	c.current = mathx.Sqrt(c.current)
	return c
}

func (c *Calculator) Square() *Calculator {
	c.current = mathx.Multiply(c.current, c.current)
	return c
}

func (c *Calculator) Reciprocal() (*Calculator, error) {
	if c.current == 0 {
		return c, ErrReciprocalOfZero
	}
	c.current = mathx.Divide(1, c.current)
	return c, nil
}

func (c *Calculator) Clear() *Calculator {
	c.current = 0
	return c
}

func (c *Calculator) MemoryStore() *Calculator {
	c.memory = c.current
	return c
}

func (c *Calculator) MemoryRecall() *Calculator {
	c.current = c.memory
	return c
}

func (c *Calculator) MemoryClear() *Calculator {
	c.memory = 0
	return c
}

func (c *Calculator) MemoryAdd() *Calculator {
	c.memory = mathx.Add(c.memory, c.current)
	return c
}
