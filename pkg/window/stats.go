package window

import (
	"go.uber.org/zap/zapcore"

	"github.com/twam/circular-buffer/pkg/circular"
	"github.com/twam/circular-buffer/pkg/utility/fixed"
)

// Stats maintains rolling statistics over the last N pushed values. Sum and
// sum of squares are corrected incrementally on eviction, so a push is O(1)
// regardless of the window size. Min and Max scan the window.
type Stats struct {
	buf *circular.Buffer[fixed.Point]

	sum        fixed.Point
	sumSquares fixed.Point
	mean       fixed.Point
	variance   fixed.Point
	stdDev     fixed.Point
}

func NewStats(capacity int) *Stats {
	if capacity <= 0 {
		panic("capacity must be positive")
	}
	return &Stats{
		buf: circular.NewBuffer[fixed.Point](capacity),

		sum:        fixed.Zero,
		sumSquares: fixed.Zero,
		mean:       fixed.Zero,
		variance:   fixed.Zero,
		stdDev:     fixed.Zero,
	}
}

func (s *Stats) Push(v fixed.Point) {
	if s.buf.Full() {
		evicted := s.buf.Front()
		s.sum = s.sum.Sub(evicted)
		s.sumSquares = s.sumSquares.Sub(evicted.Mul(evicted))
	}
	s.buf.PushBack(v)
	s.sum = s.sum.Add(v)
	s.sumSquares = s.sumSquares.Add(v.Mul(v))

	n := s.buf.Size()
	s.mean = s.sum.DivInt(n)
	s.variance = s.sumSquares.DivInt(n).Sub(s.mean.Mul(s.mean))
	if s.variance.Gt(fixed.Zero) {
		s.stdDev = s.variance.Sqrt()
	} else {
		s.stdDev = fixed.Zero
	}
}

func (s *Stats) Size() int {
	return s.buf.Size()
}

func (s *Stats) Capacity() int {
	return s.buf.Capacity()
}

// Ready reports whether the window has been filled once.
func (s *Stats) Ready() bool {
	return s.buf.Full()
}

func (s *Stats) Sum() fixed.Point {
	return s.sum
}

func (s *Stats) Mean() fixed.Point {
	return s.mean
}

func (s *Stats) Variance() fixed.Point {
	return s.variance
}

func (s *Stats) StdDev() fixed.Point {
	return s.stdDev
}

// Latest returns the newest value in the window. The window must not be empty.
func (s *Stats) Latest() fixed.Point {
	return s.buf.Back()
}

// Oldest returns the value that the next push will evict once the window is
// full. The window must not be empty.
func (s *Stats) Oldest() fixed.Point {
	return s.buf.Front()
}

func (s *Stats) Min() fixed.Point {
	if s.buf.Empty() {
		panic("window is empty")
	}

	it := s.buf.Begin()
	minVal := it.Value()
	for it.Next(); !it.Eq(s.buf.End()); it.Next() {
		if v := it.Value(); v.Lt(minVal) {
			minVal = v
		}
	}
	return minVal
}

func (s *Stats) Max() fixed.Point {
	if s.buf.Empty() {
		panic("window is empty")
	}

	it := s.buf.Begin()
	maxVal := it.Value()
	for it.Next(); !it.Eq(s.buf.End()); it.Next() {
		if v := it.Value(); v.Gt(maxVal) {
			maxVal = v
		}
	}
	return maxVal
}

// Values returns the window contents oldest-to-newest.
func (s *Stats) Values() []fixed.Point {
	return s.buf.Slice()
}

func (s *Stats) Reset() {
	s.buf.Clear()
	s.sum = fixed.Zero
	s.sumSquares = fixed.Zero
	s.mean = fixed.Zero
	s.variance = fixed.Zero
	s.stdDev = fixed.Zero
}

func (s *Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("size", s.buf.Size())
	enc.AddString("mean", s.mean.String())
	enc.AddString("std_dev", s.stdDev.String())
	enc.AddString("variance", s.variance.String())
	return nil
}
