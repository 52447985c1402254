package queue

import "errors"

var ErrQueueFull = errors.New("queue is full")

// Queue is a bounded FIFO backed by a channel. Enqueue never blocks a
// caller: a full queue is reported as ErrQueueFull so the producer can
// push back instead of stalling a request handler.
type Queue[T any] struct {
	data chan T
}

func NewQueue[T any](size int) *Queue[T] {
	return &Queue[T]{data: make(chan T, size)}
}

func (q *Queue[T]) Enqueue(value T) error {
	select {
	case q.data <- value:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue blocks until a value is available.
func (q *Queue[T]) Dequeue() T {
	return <-q.data
}

func (q *Queue[T]) Len() int {
	return len(q.data)
}
