package util

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T comparable] struct {
	items []T
}

func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{items: make([]T, 0)}
}

func (q *Queue[T]) Push(t T) {
	q.items = append(q.items, t)
}

// Pop removes and returns the front item. It panics on an empty queue.
func (q *Queue[T]) Pop() T {
	item := q.Front()
	q.items = q.items[1:len(q.items)]
	return item
}

func (q *Queue[T]) Front() T {
	item := q.items[0]
	return item
}

func (q *Queue[T]) Contains(t T) bool {
	for _, item := range q.items {
		if item == t {
			return true
		}
	}
	return false
}

func (q *Queue[T]) Empty() bool {
	return len(q.items) == 0
}

func (q *Queue[T]) Size() int {
	return len(q.items)
}
