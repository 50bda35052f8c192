package circular

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("index out of range")

// Buffer is a fixed-capacity ring buffer with overwrite-on-full semantics.
// Pushing to a full buffer silently evicts the oldest element. Not thread
// safe; concurrent use requires external synchronization. Any mutation
// invalidates previously obtained iterators.
//
// Logical element i lives at physical slot (head+i) mod len(data). A zero
// capacity buffer is permitted and is always both empty and full; it keeps
// a single placeholder slot so the index arithmetic stays well-defined.
type Buffer[T any] struct {
	data     []T
	capacity int

	size int
	tail int
	head int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("invalid capacity %d", capacity))
	}

	stride := capacity
	if stride == 0 {
		stride = 1
	}

	return &Buffer[T]{
		data:     make([]T, stride),
		capacity: capacity,
		head:     1,
	}
}

func (b *Buffer[T]) Size() int {
	return b.size
}

func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

func (b *Buffer[T]) Empty() bool {
	return b.size == 0
}

func (b *Buffer[T]) Full() bool {
	return b.size == b.capacity
}

// PushBack appends item as the newest element. When the buffer is full the
// oldest element is evicted first; the caller is never blocked or notified.
func (b *Buffer[T]) PushBack(item T) {
	if b.size == b.capacity {
		b.head = (b.head + 1) % len(b.data)
		b.size--
	}
	b.tail = (b.tail + 1) % len(b.data)
	b.size++
	b.data[b.tail] = item
}

// PopFront removes the oldest element. The buffer must not be empty.
func (b *Buffer[T]) PopFront() {
	if b.size == 0 {
		panic("buffer is empty")
	}
	b.head = (b.head + 1) % len(b.data)
	b.size--
}

// Get returns the logical element at position i without bounds checking.
// An out-of-range i reads a stale slot; validity is the caller's contract.
func (b *Buffer[T]) Get(i int) T {
	return b.data[b.position(i)]
}

// Set overwrites the logical element at position i without bounds checking.
func (b *Buffer[T]) Set(i int, value T) {
	b.data[b.position(i)] = value
}

// At returns the logical element at position i, validated against the
// buffer capacity. Note this is a capacity bound, not a size bound: reading
// a slot between size and capacity yields stale or zero data.
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.capacity {
		var zero T
		return zero, fmt.Errorf("at %d: %w", i, ErrOutOfRange)
	}
	return b.data[b.position(i)], nil
}

// Front returns the oldest element. The buffer must not be empty.
func (b *Buffer[T]) Front() T {
	if b.size == 0 {
		panic("buffer is empty")
	}
	return b.Begin().Value()
}

// Back returns the newest element. The buffer must not be empty.
func (b *Buffer[T]) Back() T {
	if b.size == 0 {
		panic("buffer is empty")
	}
	return b.End().Sub(1).Value()
}

// Fill assigns value across the current logical window. It does not grow
// the buffer or change its size.
func (b *Buffer[T]) Fill(value T) {
	for it := b.Begin(); !it.Eq(b.End()); it.Next() {
		it.Set(value)
	}
}

// Clear resets the buffer to the empty state. Storage contents are left in
// place and treated as free slots, overwritten on the next write.
func (b *Buffer[T]) Clear() {
	b.size = 0
	b.tail = 0
	b.head = 1
}

// Slice returns the logical contents front-to-back as a fresh slice.
func (b *Buffer[T]) Slice() []T {
	if b.size == 0 {
		return nil
	}
	result := make([]T, b.size)
	for i := 0; i < b.size; i++ {
		result[i] = b.Get(i)
	}
	return result
}

func (b *Buffer[T]) position(i int) int {
	return (b.head + i) % len(b.data)
}
