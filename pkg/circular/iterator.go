package circular

// Iterator presents the wrapped storage as a linear bidirectional sequence.
// It holds a non-owning reference to its buffer and a logical position;
// positions outside [0, size) may be held for arithmetic but must not be
// dereferenced. Iterators are invalidated by any mutation of the buffer.
type Iterator[T any] struct {
	buf *Buffer[T]
	pos int
}

func (it Iterator[T]) Value() T {
	return it.buf.Get(it.pos)
}

func (it Iterator[T]) Set(value T) {
	it.buf.Set(it.pos, value)
}

func (it Iterator[T]) Pos() int {
	return it.pos
}

func (it *Iterator[T]) Next() {
	it.pos++
}

func (it *Iterator[T]) Prev() {
	it.pos--
}

func (it *Iterator[T]) Advance(n int) {
	it.pos += n
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos + n}
}

func (it Iterator[T]) Sub(n int) Iterator[T] {
	return Iterator[T]{buf: it.buf, pos: it.pos - n}
}

// Eq reports whether both iterators originate from the same buffer instance
// and sit at the same logical position. Iterators over different buffers
// are never equal.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	return it.buf == other.buf && it.pos == other.pos
}

// Const widens the iterator to its read-only form. The conversion is one
// way; there is no path back to a mutable iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos}
}

// ConstIterator is the read-only variant of Iterator. It shares the same
// logical-position model but exposes no way to write through it.
type ConstIterator[T any] struct {
	buf *Buffer[T]
	pos int
}

func (it ConstIterator[T]) Value() T {
	return it.buf.Get(it.pos)
}

func (it ConstIterator[T]) Pos() int {
	return it.pos
}

func (it *ConstIterator[T]) Next() {
	it.pos++
}

func (it *ConstIterator[T]) Prev() {
	it.pos--
}

func (it *ConstIterator[T]) Advance(n int) {
	it.pos += n
}

func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos + n}
}

func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos - n}
}

func (it ConstIterator[T]) Eq(other ConstIterator[T]) bool {
	return it.buf == other.buf && it.pos == other.pos
}

// ReverseIterator walks the buffer back-to-front. It wraps a base iterator
// and dereferences one position before it, so REnd's base is Begin and
// RBegin's base is End.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

func (it ReverseIterator[T]) Value() T {
	return it.base.Sub(1).Value()
}

func (it ReverseIterator[T]) Set(value T) {
	it.base.Sub(1).Set(value)
}

func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base
}

func (it *ReverseIterator[T]) Next() {
	it.base.Prev()
}

func (it *ReverseIterator[T]) Prev() {
	it.base.Next()
}

func (it *ReverseIterator[T]) Advance(n int) {
	it.base.Advance(-n)
}

func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Sub(n)}
}

func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Add(n)}
}

func (it ReverseIterator[T]) Eq(other ReverseIterator[T]) bool {
	return it.base.Eq(other.base)
}

func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Const()}
}

// ConstReverseIterator is the read-only variant of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

func (it ConstReverseIterator[T]) Value() T {
	return it.base.Sub(1).Value()
}

func (it ConstReverseIterator[T]) Base() ConstIterator[T] {
	return it.base
}

func (it *ConstReverseIterator[T]) Next() {
	it.base.Prev()
}

func (it *ConstReverseIterator[T]) Prev() {
	it.base.Next()
}

func (it *ConstReverseIterator[T]) Advance(n int) {
	it.base.Advance(-n)
}

func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Sub(n)}
}

func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Add(n)}
}

func (it ConstReverseIterator[T]) Eq(other ConstReverseIterator[T]) bool {
	return it.base.Eq(other.base)
}

// Begin returns an iterator at logical position 0.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: b, pos: 0}
}

// End returns an iterator one past the last element.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{buf: b, pos: b.size}
}

func (b *Buffer[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{buf: b, pos: 0}
}

func (b *Buffer[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{buf: b, pos: b.size}
}

func (b *Buffer[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: b.End()}
}

func (b *Buffer[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: b.Begin()}
}

func (b *Buffer[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: b.CEnd()}
}

func (b *Buffer[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: b.CBegin()}
}
