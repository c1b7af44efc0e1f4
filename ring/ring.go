// Package ring implements a bounded circular buffer: a FIFO queue over a
// fixed backing array with wrapping head and tail indexes. Push refuses
// when full rather than overwriting, so the caller decides the drop
// policy. A buffer is not safe for concurrent use.
package ring

type Buffer[T any] struct {
	items []T
	head  int // next slot to pop
	tail  int // next slot to push
	n     int // live elements
}

// NewBuffer creates a buffer holding at most capacity elements.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{items: make([]T, capacity)}
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.items)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.n == 0
}

// Full reports whether another Push would be refused.
func (b *Buffer[T]) Full() bool {
	return b.n == len(b.items)
}

// Push appends v at the tail, reporting false when the buffer is full.
func (b *Buffer[T]) Push(v T) bool {
	if b.n == len(b.items) {
		return false
	}
	b.items[b.tail] = v
	b.tail++
	if b.tail == len(b.items) {
		b.tail = 0
	}
	b.n++
	return true
}

// Pop removes and returns the oldest element, reporting false when the
// buffer is empty.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.n == 0 {
		return zero, false
	}
	v := b.items[b.head]
	b.items[b.head] = zero // release the slot's reference
	b.head++
	if b.head == len(b.items) {
		b.head = 0
	}
	b.n--
	return v, true
}

// Peek returns the oldest element without removing it, reporting false
// when the buffer is empty.
func (b *Buffer[T]) Peek() (T, bool) {
	if b.n == 0 {
		var zero T
		return zero, false
	}
	return b.items[b.head], true
}

// Reset drops all elements, keeping the backing array.
func (b *Buffer[T]) Reset() {
	var zero T
	for i := range b.items {
		b.items[i] = zero
	}
	b.head, b.tail, b.n = 0, 0, 0
}
