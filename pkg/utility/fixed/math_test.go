package fixed

import (
	"testing"
)

func assertPointEqual(t *testing.T, expected, actual Point, tolerance float64, msg string) {
	t.Helper()

	diff := expected.Sub(actual).Abs()
	if diff.Gt(FromFloat64(tolerance)) {
		t.Errorf("%s: got %s, want %s", msg, actual.String(), expected.String())
	}
}

func pointsFromFloats(values []float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = FromFloat64(v)
	}
	return points
}

func TestFixedMath_Mean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Point
	}{
		{
			name:     "empty slice",
			values:   nil,
			expected: Zero,
		},
		{
			name:     "single value",
			values:   []float64{5.0},
			expected: FromFloat64(5.0),
		},
		{
			name:     "simple sequence",
			values:   []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			expected: FromFloat64(3.0),
		},
		{
			name:     "negative values",
			values:   []float64{-2.0, 0.0, 2.0},
			expected: Zero,
		},
		{
			name:     "decimals",
			values:   []float64{1.5, 2.5},
			expected: FromFloat64(2.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mean(pointsFromFloats(tt.values))
			assertPointEqual(t, tt.expected, result, 0.0001, "Mean calculation")
		})
	}
}

func TestFixedMath_StdDev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty slice",
			values:   nil,
			expected: 0,
		},
		{
			name:     "single value",
			values:   []float64{5.0},
			expected: 0,
		},
		{
			name:     "no deviation",
			values:   []float64{3.0, 3.0, 3.0},
			expected: 0,
		},
		{
			name:     "known deviation",
			values:   []float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0},
			expected: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := pointsFromFloats(tt.values)
			result := StdDev(points, Mean(points))
			assertPointEqual(t, FromFloat64(tt.expected), result, 0.0001, "StdDev calculation")
		})
	}
}

func TestFixedMath_SampleStdDev(t *testing.T) {
	// Sample deviation divides by n-1, so it must exceed the population
	// deviation on the same data.
	points := pointsFromFloats([]float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0})
	mean := Mean(points)

	population := StdDev(points, mean)
	sample := SampleStdDev(points, mean)

	if !sample.Gt(population) {
		t.Errorf("sample stddev %s should exceed population stddev %s",
			sample.String(), population.String())
	}
}

func TestFixedMath_Variance(t *testing.T) {
	points := pointsFromFloats([]float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0})
	mean := Mean(points)

	assertPointEqual(t, FromFloat64(4.0), Variance(points, mean), 0.0001, "Variance calculation")

	sq := StdDev(points, mean).Mul(StdDev(points, mean))
	assertPointEqual(t, Variance(points, mean), sq, 0.0001, "Variance vs StdDev squared")
}

func TestFixedMath_SampleVariance(t *testing.T) {
	points := pointsFromFloats([]float64{1.0, 2.0, 3.0, 4.0})
	mean := Mean(points)

	// Population variance 1.25, sample variance 5/3.
	assertPointEqual(t, FromFloat64(1.25), Variance(points, mean), 0.0001, "population variance")
	assertPointEqual(t, FromFloat64(1.6667), SampleVariance(points, mean), 0.0001, "sample variance")
}

func TestFixedMath_MinMax(t *testing.T) {
	points := pointsFromFloats([]float64{3.0, 1.0, 4.0, 1.0, 5.0, 9.0, 2.0})

	if !Min(points).Eq(FromFloat64(1.0)) {
		t.Errorf("Min: got %s, want 1", Min(points).String())
	}
	if !Max(points).Eq(FromFloat64(9.0)) {
		t.Errorf("Max: got %s, want 9", Max(points).String())
	}

	t.Run("empty min panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		Min(nil)
	})

	t.Run("empty max panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		Max(nil)
	})
}

func BenchmarkFixedMath_Mean(b *testing.B) {
	points := make([]Point, 100)
	for i := range points {
		points[i] = FromFloat64(float64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Mean(points)
	}
}

func BenchmarkFixedMath_StdDev(b *testing.B) {
	points := make([]Point, 100)
	for i := range points {
		points[i] = FromFloat64(float64(i))
	}
	mean := Mean(points)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = StdDev(points, mean)
	}
}
