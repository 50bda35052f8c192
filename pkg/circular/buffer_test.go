package circular

import (
	"errors"
	"testing"
)

func assertBufferEqual(t *testing.T, b *Buffer[int], expected []int, msg string) {
	t.Helper()
	if b.Size() != len(expected) {
		t.Errorf("%s: size mismatch - got %d, want %d", msg, b.Size(), len(expected))
		return
	}

	for i, want := range expected {
		if got := b.Get(i); got != want {
			t.Errorf("%s: at index %d - got %d, want %d", msg, i, got, want)
		}
	}
}

func TestBuffer_NewBuffer(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		wantPanic bool
	}{
		{
			name:      "positive capacity",
			capacity:  10,
			wantPanic: false,
		},
		{
			name:      "capacity of 1",
			capacity:  1,
			wantPanic: false,
		},
		{
			name:      "zero capacity",
			capacity:  0,
			wantPanic: false,
		},
		{
			name:      "negative capacity",
			capacity:  -5,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("expected panic for capacity %d", tt.capacity)
					}
				}()
			}

			b := NewBuffer[int](tt.capacity)

			if !tt.wantPanic {
				if b.Capacity() != tt.capacity {
					t.Errorf("capacity: got %d, want %d", b.Capacity(), tt.capacity)
				}
				if b.Size() != 0 {
					t.Errorf("initial size: got %d, want 0", b.Size())
				}
				if !b.Empty() {
					t.Error("new buffer should be empty")
				}
			}
		})
	}
}

func TestBuffer_PushBack(t *testing.T) {
	b := NewBuffer[int](3)

	b.PushBack(1)
	assertBufferEqual(t, b, []int{1}, "after first push")

	b.PushBack(2)
	assertBufferEqual(t, b, []int{1, 2}, "after second push")

	b.PushBack(3)
	assertBufferEqual(t, b, []int{1, 2, 3}, "at capacity")

	b.PushBack(4)
	assertBufferEqual(t, b, []int{2, 3, 4}, "after first overwrite")

	b.PushBack(5)
	assertBufferEqual(t, b, []int{3, 4, 5}, "after second overwrite")
}

func TestBuffer_PushOrderPreserved(t *testing.T) {
	const capacity = 16

	b := NewBuffer[int](capacity)
	for i := 0; i < capacity; i++ {
		b.PushBack(i * 10)
		if b.Size() != i+1 {
			t.Fatalf("size after %d pushes: got %d, want %d", i+1, b.Size(), i+1)
		}
	}

	i := 0
	for it := b.Begin(); !it.Eq(b.End()); it.Next() {
		if it.Value() != i*10 {
			t.Errorf("at position %d: got %d, want %d", i, it.Value(), i*10)
		}
		i++
	}
	if i != capacity {
		t.Errorf("iterated %d elements, want %d", i, capacity)
	}
}

func TestBuffer_OverwritePolicy(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
	}{
		{"no wrap", 5, 5},
		{"single wrap", 5, 8},
		{"many wraps", 3, 100},
		{"capacity one", 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer[int](tt.capacity)
			for i := 0; i < tt.pushes; i++ {
				b.PushBack(i)
			}

			if b.Size() != tt.capacity {
				t.Fatalf("size: got %d, want %d", b.Size(), tt.capacity)
			}
			if !b.Full() {
				t.Error("buffer should be full")
			}

			// Logical contents must equal the last `capacity` pushed values.
			first := tt.pushes - tt.capacity
			for i := 0; i < tt.capacity; i++ {
				if got := b.Get(i); got != first+i {
					t.Errorf("Get(%d): got %d, want %d", i, got, first+i)
				}
			}
		})
	}
}

func TestBuffer_PopFront(t *testing.T) {
	b := NewBuffer[int](3)

	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)
	b.PushBack(4)
	b.PushBack(5)
	assertBufferEqual(t, b, []int{3, 4, 5}, "after five pushes")

	b.PopFront()
	assertBufferEqual(t, b, []int{4, 5}, "after pop")

	b.PopFront()
	b.PopFront()
	if !b.Empty() {
		t.Error("buffer should be empty after popping everything")
	}

	t.Run("empty buffer panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic when popping empty buffer")
			}
		}()
		b.PopFront()
	})
}

func TestBuffer_PopPushInterleaved(t *testing.T) {
	b := NewBuffer[int](4)

	next := 0
	for i := 0; i < 4; i++ {
		b.PushBack(next)
		next++
	}

	// Rotate through the window many times; surviving elements must keep
	// their FIFO ordering.
	expectedFront := 0
	for i := 0; i < 50; i++ {
		if b.Front() != expectedFront {
			t.Fatalf("round %d: front got %d, want %d", i, b.Front(), expectedFront)
		}
		b.PopFront()
		expectedFront++
		b.PushBack(next)
		next++

		for j := 0; j < b.Size(); j++ {
			if got := b.Get(j); got != expectedFront+j {
				t.Fatalf("round %d: Get(%d) got %d, want %d", i, j, got, expectedFront+j)
			}
		}
	}
}

func TestBuffer_At(t *testing.T) {
	b := NewBuffer[int](4)
	b.PushBack(10)
	b.PushBack(20)

	// At validates against capacity, not size. Indices between size and
	// capacity succeed and may read stale slots.
	for i := 0; i < 4; i++ {
		if _, err := b.At(i); err != nil {
			t.Errorf("At(%d): unexpected error %v", i, err)
		}
	}

	v, err := b.At(0)
	if err != nil {
		t.Fatalf("At(0): unexpected error %v", err)
	}
	if v != 10 {
		t.Errorf("At(0): got %d, want 10", v)
	}

	v, err = b.At(1)
	if err != nil {
		t.Fatalf("At(1): unexpected error %v", err)
	}
	if v != 20 {
		t.Errorf("At(1): got %d, want 20", v)
	}

	invalidIndices := []int{-1, 4, 5, 100}
	for _, idx := range invalidIndices {
		if _, err := b.At(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d): got %v, want ErrOutOfRange", idx, err)
		}
	}
}

func TestBuffer_FrontBack(t *testing.T) {
	b := NewBuffer[string](3)

	t.Run("empty front panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		b.Front()
	})

	t.Run("empty back panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		b.Back()
	})

	b.PushBack("a")
	if b.Front() != "a" || b.Back() != "a" {
		t.Errorf("single element: front %q back %q, want both \"a\"", b.Front(), b.Back())
	}

	b.PushBack("b")
	b.PushBack("c")
	if b.Front() != "a" {
		t.Errorf("front: got %q, want \"a\"", b.Front())
	}
	if b.Back() != "c" {
		t.Errorf("back: got %q, want \"c\"", b.Back())
	}

	b.PushBack("d")
	if b.Front() != "b" {
		t.Errorf("front after overwrite: got %q, want \"b\"", b.Front())
	}
	if b.Back() != "d" {
		t.Errorf("back after overwrite: got %q, want \"d\"", b.Back())
	}
}

func TestBuffer_Fill(t *testing.T) {
	b := NewBuffer[int](5)
	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)

	b.Fill(9)

	// Fill assigns across the logical window only; size must not change.
	assertBufferEqual(t, b, []int{9, 9, 9}, "after fill")

	b.PushBack(4)
	assertBufferEqual(t, b, []int{9, 9, 9, 4}, "push after fill")
}

func TestBuffer_FillEmpty(t *testing.T) {
	b := NewBuffer[int](3)
	b.Fill(7)

	if b.Size() != 0 {
		t.Errorf("fill on empty buffer changed size to %d", b.Size())
	}
}

func TestBuffer_Clear(t *testing.T) {
	b := NewBuffer[int](3)

	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)

	b.Clear()

	if b.Size() != 0 {
		t.Errorf("size after clear: got %d, want 0", b.Size())
	}
	if !b.Empty() {
		t.Error("buffer should be empty after clear")
	}
	if b.Full() {
		t.Error("cleared buffer with capacity > 0 should not be full")
	}

	b.PushBack(4)
	assertBufferEqual(t, b, []int{4}, "push after clear")
}

func TestBuffer_ZeroCapacity(t *testing.T) {
	b := NewBuffer[int](0)

	if !b.Empty() {
		t.Error("zero capacity buffer should be empty")
	}
	if !b.Full() {
		t.Error("zero capacity buffer should be full")
	}

	b.PushBack(1)
	b.PushBack(2)

	if b.Size() != 0 {
		t.Errorf("size after pushes: got %d, want 0", b.Size())
	}
	if !b.Empty() || !b.Full() {
		t.Error("zero capacity buffer should stay empty and full")
	}

	if _, err := b.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Error("At(0) on zero capacity buffer should fail")
	}

	if !b.Begin().Eq(b.End()) {
		t.Error("begin and end should coincide on a zero capacity buffer")
	}

	b.Clear()
	if b.Size() != 0 {
		t.Error("clear on zero capacity buffer should keep size 0")
	}
}

func TestBuffer_Slice(t *testing.T) {
	b := NewBuffer[int](3)

	if s := b.Slice(); s != nil {
		t.Error("Slice() should return nil for empty buffer")
	}

	b.PushBack(1)
	b.PushBack(2)
	b.PushBack(3)
	b.PushBack(4)

	s := b.Slice()
	expected := []int{2, 3, 4}
	if len(s) != len(expected) {
		t.Fatalf("Slice() length: got %d, want %d", len(s), len(expected))
	}
	for i, v := range expected {
		if s[i] != v {
			t.Errorf("Slice()[%d]: got %d, want %d", i, s[i], v)
		}
	}
}

func TestBuffer_StructElements(t *testing.T) {
	type sample struct {
		id   int
		name string
	}

	b := NewBuffer[sample](2)
	b.PushBack(sample{1, "one"})
	b.PushBack(sample{2, "two"})
	b.PushBack(sample{3, "three"})

	if got := b.Front(); got.id != 2 || got.name != "two" {
		t.Errorf("front: got %+v", got)
	}
	if got := b.Back(); got.id != 3 || got.name != "three" {
		t.Errorf("back: got %+v", got)
	}
}

func BenchmarkBuffer_PushBack(b *testing.B) {
	buf := NewBuffer[int](100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
	}
}

func BenchmarkBuffer_Get(b *testing.B) {
	buf := NewBuffer[int](100)
	for i := 0; i < 100; i++ {
		buf.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Get(i % 100)
	}
}

func BenchmarkBuffer_PushPop(b *testing.B) {
	buf := NewBuffer[int](100)
	for i := 0; i < 100; i++ {
		buf.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PopFront()
		buf.PushBack(i)
	}
}

func BenchmarkBuffer_Slice(b *testing.B) {
	buf := NewBuffer[int](100)
	for i := 0; i < 100; i++ {
		buf.PushBack(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Slice()
	}
}
